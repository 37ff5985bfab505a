package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-reservation-bot/internal/slack"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

type MessageHandler struct {
	slackClient      contract.SlackClient
	reservations     contract.ReservationService
	announcements    contract.AnnouncementService
	prefix           string
	reserveChannelID string
	bootstrapAdmin   string

	usernames    map[string]string // Slack user id -> username
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func New(slackClient contract.SlackClient, reservations contract.ReservationService, announcements contract.AnnouncementService, prefix, reserveChannelID, bootstrapAdmin string) *MessageHandler {
	return &MessageHandler{
		slackClient:      slackClient,
		reservations:     reservations,
		announcements:    announcements,
		prefix:           prefix,
		reserveChannelID: reserveChannelID,
		bootstrapAdmin:   bootstrapAdmin,
		usernames:        make(map[string]string),
		shutdownCh:       make(chan struct{}),
	}
}

// ShutdownRequested is closed after an admin `kill` command.
func (h *MessageHandler) ShutdownRequested() <-chan struct{} {
	return h.shutdownCh
}

// Run consumes the socket-mode event stream: the message stream and the
// connection-error stream are both handled by this single dispatch loop.
func (h *MessageHandler) Run(ctx context.Context, client *socketmode.Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-client.Events:
			if !ok {
				return
			}
			switch evt.Type {
			case socketmode.EventTypeEventsAPI:
				apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
				if !ok {
					continue
				}
				client.Ack(*evt.Request)
				if apiEvent.Type != slackevents.CallbackEvent {
					continue
				}
				if ev, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent); ok {
					h.HandleMessage(ev)
				}
			case socketmode.EventTypeConnectionError:
				log.Printf("Socket connection error: %v", evt.Data)
			}
		}
	}
}

// HandleMessage processes one inbound channel message. Bot echoes, edited
// messages and messages outside the reserve channel or without the command
// prefix are ignored.
func (h *MessageHandler) HandleMessage(ev *slackevents.MessageEvent) {
	if ev.BotID != "" || ev.SubType != "" {
		return
	}
	if ev.Channel != h.reserveChannelID {
		return
	}

	text := strings.TrimSpace(ev.Text)
	fields := strings.Fields(text)
	if len(fields) == 0 || fields[0] != h.prefix {
		return
	}

	user, err := h.username(ev.User)
	if err != nil {
		log.Printf("Failed to resolve username for %s: %v", ev.User, err)
		h.post(ev.Channel, "Failed to process request, see logs for details.")
		return
	}

	reply, shutdown := h.Dispatch(user, strings.TrimSpace(strings.TrimPrefix(text, h.prefix)))
	if reply != "" {
		h.post(ev.Channel, reply)
	}
	if shutdown {
		h.shutdownOnce.Do(func() { close(h.shutdownCh) })
	}
}

// Dispatch maps a parsed command to one service call and a reply. The second
// return value reports an admin-approved shutdown.
func (h *MessageHandler) Dispatch(user, text string) (string, bool) {
	cmd, err := slackcmd.ParseCommand(text)
	if err != nil {
		return "I didn't recognize that request", false
	}

	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList(), false
	case slackcmd.CmdMake:
		return h.handleMake(cmd, user), false
	case slackcmd.CmdMakeForOther:
		return h.handleMakeForOther(cmd, user), false
	case slackcmd.CmdDelete:
		return h.handleDelete(cmd, user), false
	case slackcmd.CmdDeleteByID:
		return h.handleDeleteByID(cmd, user), false
	case slackcmd.CmdDeleteAll:
		return h.handleDeleteAll(user), false
	case slackcmd.CmdMakeAdmin:
		return h.handleMakeAdmin(cmd, user), false
	case slackcmd.CmdRemoveAdmin:
		return h.handleRemoveAdmin(cmd, user), false
	case slackcmd.CmdListAdmins:
		return h.handleListAdmins(), false
	case slackcmd.CmdAddKnown:
		return h.handleAddKnown(cmd, user), false
	case slackcmd.CmdListKnown:
		return h.handleListKnown(), false
	case slackcmd.CmdAddExpected:
		return h.handleAddExpected(cmd, user), false
	case slackcmd.CmdListExpected:
		return h.handleListExpected(), false
	case slackcmd.CmdScheduleAnnouncement:
		return h.handleScheduleAnnouncement(cmd, user), false
	case slackcmd.CmdListAnnouncements:
		return h.handleListAnnouncements(user), false
	case slackcmd.CmdDeleteAnnouncement:
		return h.handleDeleteAnnouncement(cmd, user), false
	case slackcmd.CmdHelp:
		return slackcmd.GetHelpText(h.prefix), false
	case slackcmd.CmdAdminHelp:
		return h.handleAdminHelp(user), false
	case slackcmd.CmdReload:
		return h.handleReload(user), false
	case slackcmd.CmdKill:
		return h.handleKill(user)
	default:
		return "I didn't recognize that request", false
	}
}

func (h *MessageHandler) handleList() string {
	from := time.Now()
	reservations, err := h.reservations.ListReservations(from, from.Add(domain.ScheduleWindow))
	if err != nil {
		log.Printf("Failed to list reservations: %v", err)
		return "Failed to display schedule, see logs for details."
	}

	var b strings.Builder
	b.WriteString("Reservations:\n")
	for _, r := range reservations {
		fmt.Fprintf(&b, "%d %s: %s on %s\n", r.ID, r.User, r.Type, r.Date.Format(domain.DateLayout))
	}
	return b.String()
}

func (h *MessageHandler) handleMake(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 2 {
		return fmt.Sprintf("Use: %s make: <date>; <type>", h.prefix)
	}

	date, err := time.Parse(domain.DateLayout, cmd.Args[0])
	if err != nil {
		return fmt.Sprintf("I couldn't read the date %q, use YYYY-MM-DD", cmd.Args[0])
	}

	_, warnings, err := h.reservations.CreateReservation(date, cmd.Args[1], user, user)
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return conflictReply(conflict)
		}
		log.Printf("Failed to make reservation: %v", err)
		return "Failed to make reservation, see logs for details."
	}

	return strings.Join(append(warnings, "Reservation made"), "\n")
}

func (h *MessageHandler) handleMakeForOther(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 3 {
		return fmt.Sprintf("Use: %s make-for-other: <date>; <username>; <type>", h.prefix)
	}

	date, err := time.Parse(domain.DateLayout, cmd.Args[0])
	if err != nil {
		return fmt.Sprintf("I couldn't read the date %q, use YYYY-MM-DD", cmd.Args[0])
	}

	_, warnings, err := h.reservations.CreateReservation(date, cmd.Args[2], cmd.Args[1], user)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to make reservations for other users"
		}
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return conflictReply(conflict)
		}
		log.Printf("Failed to make reservation: %v", err)
		return "Failed to make reservation, see logs for details."
	}

	return strings.Join(append(warnings, "Reservation made"), "\n")
}

func (h *MessageHandler) handleDelete(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 2 {
		return fmt.Sprintf("Use: %s delete: <date>; <type>", h.prefix)
	}

	date, err := time.Parse(domain.DateLayout, cmd.Args[0])
	if err != nil {
		return fmt.Sprintf("I couldn't read the date %q, use YYYY-MM-DD", cmd.Args[0])
	}

	deleted, notices, err := h.reservations.DeleteReservation(date, cmd.Args[1], user)
	if err != nil {
		log.Printf("Failed to delete reservation: %v", err)
		return "Failed to delete reservation, see logs for details."
	}

	return strings.Join(append(notices, fmt.Sprintf("Deleted %d reservations.", deleted)), "\n")
}

func (h *MessageHandler) handleDeleteByID(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 1 {
		return fmt.Sprintf("Use: %s delete-by-id: <id>", h.prefix)
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return fmt.Sprintf("I couldn't read the id %q", cmd.Args[0])
	}

	if err := h.reservations.DeleteByID(id, user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to delete reservations by id"
		}
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Sprintf("No reservation found with id %d", id)
		}
		log.Printf("Failed to delete reservation by id: %v", err)
		return "Failed to delete reservation, see logs for details."
	}

	return fmt.Sprintf("Reservation %d deleted", id)
}

func (h *MessageHandler) handleDeleteAll(user string) string {
	deleted, err := h.reservations.DeleteAll(user)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to delete all scheduled reservations"
		}
		log.Printf("Failed to delete all reservations: %v", err)
		return "Failed to delete all reservations, see logs for details."
	}

	return fmt.Sprintf("Deleted %d records", deleted)
}

func (h *MessageHandler) handleMakeAdmin(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 1 {
		return fmt.Sprintf("Use: %s make-admin: <username>", h.prefix)
	}

	if err := h.reservations.AddAdmin(cmd.Args[0], user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to grant admin status"
		}
		log.Printf("Failed to make admin: %v", err)
		return "Failed to make user admin, see logs for details."
	}

	return fmt.Sprintf("Made %s an admin", cmd.Args[0])
}

func (h *MessageHandler) handleRemoveAdmin(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 1 {
		return fmt.Sprintf("Use: %s remove-admin: <username>", h.prefix)
	}

	if err := h.reservations.RemoveAdmin(cmd.Args[0], user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to revoke admin status"
		}
		log.Printf("Failed to remove admin: %v", err)
		return "Failed to remove admin privileges, see logs for details."
	}

	return fmt.Sprintf("%s is no longer an admin", cmd.Args[0])
}

func (h *MessageHandler) handleListAdmins() string {
	admins, err := h.reservations.ListAdmins()
	if err != nil {
		log.Printf("Failed to list admins: %v", err)
		return "Failed to list admins, see logs for details."
	}

	var b strings.Builder
	b.WriteString("Admins:\n")
	for _, name := range admins {
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}

func (h *MessageHandler) handleAddKnown(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 1 {
		return fmt.Sprintf("Use: %s add-known: <type>", h.prefix)
	}

	if err := h.reservations.AddKnownType(cmd.Args[0], user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to add known event types"
		}
		log.Printf("Failed to add known type: %v", err)
		return "Failed to add known event type, see logs for details."
	}

	return fmt.Sprintf("Made %s a known event type", cmd.Args[0])
}

func (h *MessageHandler) handleListKnown() string {
	types, err := h.reservations.ListKnownTypes()
	if err != nil {
		log.Printf("Failed to list known types: %v", err)
		return "Failed to list types, see logs for details."
	}

	var b strings.Builder
	b.WriteString("Known types:\n")
	for _, name := range types {
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}

func (h *MessageHandler) handleAddExpected(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 2 {
		return fmt.Sprintf("Use: %s add-expected: <type>; <message if none>", h.prefix)
	}

	if err := h.reservations.AddExpectedType(cmd.Args[0], cmd.Args[1], user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to add expected event types"
		}
		log.Printf("Failed to add expected type: %v", err)
		return "Failed to add expected event type, see logs for details."
	}

	return fmt.Sprintf("Made %s an expected event type", cmd.Args[0])
}

func (h *MessageHandler) handleListExpected() string {
	types, err := h.reservations.ListExpectedTypes()
	if err != nil {
		log.Printf("Failed to list expected types: %v", err)
		return "Failed to list types, see logs for details."
	}

	var b strings.Builder
	b.WriteString("Expected types:\n")
	for _, t := range types {
		b.WriteString(t.Name)
		b.WriteString("\n")
	}
	return b.String()
}

func (h *MessageHandler) handleScheduleAnnouncement(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 4 {
		return fmt.Sprintf("Use: %s schedule-announcement: <cron>; <text>; <include schedule t/f>; <request volunteers t/f>", h.prefix)
	}

	includeSchedule := cmd.Args[2] == "t"
	requestVolunteers := cmd.Args[3] == "t"

	_, err := h.announcements.CreateAnnouncement(cmd.Args[0], cmd.Args[1], includeSchedule, requestVolunteers, user)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to schedule announcements"
		}
		if errors.Is(err, domain.ErrInvalidSchedule) {
			return fmt.Sprintf("I couldn't read the schedule %q, use standard 5-field cron syntax", cmd.Args[0])
		}
		log.Printf("Failed to schedule announcement: %v", err)
		return "Failed to schedule announcement, see logs for details."
	}

	return "Scheduled announcement"
}

func (h *MessageHandler) handleListAnnouncements(user string) string {
	announcements, err := h.announcements.ListAnnouncements(user)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to list announcements"
		}
		log.Printf("Failed to list announcements: %v", err)
		return "Failed to list announcements, see logs for details."
	}

	var b strings.Builder
	b.WriteString("Announcements:\n")
	for _, a := range announcements {
		fmt.Fprintf(&b, "id: %d, cron: %s, include_schedule: %t, request_volunteers: %t\ntext:\n%s\n",
			a.ID, a.Cron, a.IncludeSchedule, a.RequestVolunteers, a.Text)
	}
	return b.String()
}

func (h *MessageHandler) handleDeleteAnnouncement(cmd *slackcmd.Command, user string) string {
	if len(cmd.Args) < 1 {
		return fmt.Sprintf("Use: %s delete-announcement: <id>", h.prefix)
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return fmt.Sprintf("I couldn't read the id %q", cmd.Args[0])
	}

	if err := h.announcements.DeleteAnnouncement(id, user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return "You do not have permissions to delete announcements"
		}
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Sprintf("No announcement found with id %d", id)
		}
		log.Printf("Failed to delete announcement: %v", err)
		return "Failed to delete announcement, see logs for details."
	}

	return "Announcement deleted"
}

func (h *MessageHandler) handleAdminHelp(user string) string {
	isAdmin, err := h.reservations.IsAdmin(user)
	if err != nil {
		log.Printf("Failed to check admin status: %v", err)
		return "Failed to display admin help, see logs for details."
	}
	if !isAdmin {
		return "You do not have permissions to display admin help"
	}
	return slackcmd.GetAdminHelpText(h.prefix)
}

func (h *MessageHandler) handleReload(user string) string {
	isAdmin, err := h.reservations.IsAdmin(user)
	if err != nil {
		log.Printf("Failed to check admin status: %v", err)
		return "Failed to reload, see logs for details."
	}
	if !isAdmin {
		return "You do not have permissions to reload the bot"
	}

	if h.bootstrapAdmin != "" {
		if err := h.reservations.SeedAdmin(h.bootstrapAdmin); err != nil {
			log.Printf("Failed to re-seed bootstrap admin: %v", err)
			return "Failed to reload, see logs for details."
		}
	}
	if err := h.announcements.SyncSchedules(); err != nil {
		log.Printf("Failed to re-sync announcement schedules: %v", err)
		return "Failed to reload, see logs for details."
	}

	return "Reloaded admin seed and announcement schedules"
}

func (h *MessageHandler) handleKill(user string) (string, bool) {
	isAdmin, err := h.reservations.IsAdmin(user)
	if err != nil {
		log.Printf("Failed to check admin status: %v", err)
		return "Failed to exit, see logs for details", false
	}
	if !isAdmin {
		return "You do not have permissions to kill the bot", false
	}
	return "Shutting down", true
}

func (h *MessageHandler) username(userID string) (string, error) {
	if name, ok := h.usernames[userID]; ok {
		return name, nil
	}

	info, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}

	h.usernames[userID] = info.Name
	return info.Name, nil
}

func (h *MessageHandler) post(channelID, text string) {
	if _, _, err := h.slackClient.PostMessage(channelID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("Failed to post message to %s: %v", channelID, err)
	}
}

func conflictReply(conflict *domain.ConflictError) string {
	existing := conflict.Existing
	return fmt.Sprintf("This slot is already reserved:\n%s: %s on %s.\nDelete this reservation first if you wish to replace it.",
		existing.User, existing.Type, existing.Date.Format(domain.DateLayout))
}
