package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

type announcementService struct {
	dm            contract.DataManager
	slackClient   contract.SlackClient
	sched         contract.AnnouncementScheduler
	postChannelID string
	now           func() time.Time
}

func newAnnouncement(dm contract.DataManager, slackClient contract.SlackClient, sched contract.AnnouncementScheduler, postChannelID string) *announcementService {
	return &announcementService{
		dm:            dm,
		slackClient:   slackClient,
		sched:         sched,
		postChannelID: postChannelID,
		now:           time.Now,
	}
}

func (s *announcementService) requireAdmin(actingUser string) error {
	isAdmin, err := s.dm.Admin().Exists(actingUser)
	if err != nil {
		return fmt.Errorf("failed to check admin status: %w", err)
	}
	if !isAdmin {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *announcementService) CreateAnnouncement(cronSpec, text string, includeSchedule, requestVolunteers bool, actingUser string) (*entity.Announcement, error) {
	if err := s.requireAdmin(actingUser); err != nil {
		return nil, err
	}

	// Validate before persisting so a bad expression never lands in storage.
	if err := s.sched.Validate(cronSpec); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidSchedule, cronSpec, err)
	}

	announcement := &entity.Announcement{
		Cron:              cronSpec,
		Text:              text,
		IncludeSchedule:   includeSchedule,
		RequestVolunteers: requestVolunteers,
	}
	if err := s.dm.Announcement().Create(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := s.register(announcement); err != nil {
		return nil, fmt.Errorf("failed to schedule announcement: %w", err)
	}

	return announcement, nil
}

func (s *announcementService) DeleteAnnouncement(id int64, actingUser string) error {
	if err := s.requireAdmin(actingUser); err != nil {
		return err
	}

	deleted, err := s.dm.Announcement().Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}

	// Cancel the recurring trigger along with the record.
	s.sched.Unregister(id)
	return nil
}

func (s *announcementService) ListAnnouncements(actingUser string) ([]*entity.Announcement, error) {
	if err := s.requireAdmin(actingUser); err != nil {
		return nil, err
	}
	return s.dm.Announcement().List()
}

func (s *announcementService) SyncSchedules() error {
	announcements, err := s.dm.Announcement().List()
	if err != nil {
		return fmt.Errorf("failed to list announcements: %w", err)
	}

	for _, a := range announcements {
		if err := s.register(a); err != nil {
			return fmt.Errorf("failed to schedule announcement %d: %w", a.ID, err)
		}
		log.Printf("Scheduled announcement %d (%s)", a.ID, a.Cron)
	}
	return nil
}

func (s *announcementService) register(a *entity.Announcement) error {
	announcement := a
	return s.sched.Register(a.ID, a.Cron, func() {
		s.runAnnouncement(announcement)
	})
}

// runAnnouncement builds and posts one occurrence of a recurring
// announcement. Failures are terminal for the occurrence: log and post a
// fallback line, never retry.
func (s *announcementService) runAnnouncement(a *entity.Announcement) {
	body, err := s.buildAnnouncement(a)
	if err != nil {
		log.Printf("Failed to build announcement %d: %v", a.ID, err)
		s.postFallback()
		return
	}

	if _, _, err := s.slackClient.PostMessage(s.postChannelID, slack.MsgOptionText(body, false)); err != nil {
		log.Printf("Failed to post announcement %d: %v", a.ID, err)
		s.postFallback()
	}
}

func (s *announcementService) buildAnnouncement(a *entity.Announcement) (string, error) {
	expectedTypes, err := s.dm.Type().ListExpected()
	if err != nil {
		return "", fmt.Errorf("failed to list expected types: %w", err)
	}

	from := s.now()
	reservations, err := s.dm.Reservation().GetByDateRange(from, from.Add(domain.ScheduleWindow))
	if err != nil {
		return "", fmt.Errorf("failed to list reservations: %w", err)
	}

	return RenderAnnouncement(a, reservations, expectedTypes), nil
}

func (s *announcementService) postFallback() {
	_, _, err := s.slackClient.PostMessage(s.postChannelID,
		slack.MsgOptionText("Failed to display update, see logs for details.", false))
	if err != nil {
		log.Printf("Failed to post fallback message: %v", err)
	}
}

// RenderAnnouncement is a pure function from an announcement plus the
// in-window ledger state to the message body. The schedule lines and the
// volunteer block are both gated on IncludeSchedule; the volunteer block
// additionally on RequestVolunteers.
func RenderAnnouncement(a *entity.Announcement, reservations []*entity.Reservation, expectedTypes []*entity.ExpectedType) string {
	var b strings.Builder
	b.WriteString(a.Text)
	b.WriteString("\n")

	if !a.IncludeSchedule {
		return b.String()
	}

	covered := make(map[string]bool)
	for _, r := range reservations {
		fmt.Fprintf(&b, "%s: %s on %s\n", r.User, r.Type, r.Date.Format(domain.DateLayout))
		covered[r.Type] = true
	}

	if a.RequestVolunteers {
		b.WriteString("\n")
		for _, t := range expectedTypes {
			if !covered[t.Name] {
				b.WriteString(t.MessageIfNone)
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
