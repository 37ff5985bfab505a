package handlers

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reservation-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	slackClient   *mocks.MockSlackClient
	reservations  *mocks.MockReservationService
	announcements *mocks.MockAnnouncementService
}

func newHandlerTestMock(t *testing.T) (h *MessageHandler, m handlerMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = handlerMocks{
		slackClient:   mocks.NewMockSlackClient(ctrl),
		reservations:  mocks.NewMockReservationService(ctrl),
		announcements: mocks.NewMockAnnouncementService(ctrl),
	}

	h = New(m.slackClient, m.reservations, m.announcements, "!reservebot", "C123456789", "alice")
	require.NotNil(t, h)

	return
}

func TestMessageHandler_Dispatch(t *testing.T) {
	date := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		user         string
		text         string
		buildMock    func(m handlerMocks)
		wantReply    string
		wantContains []string
		wantShutdown bool
	}{
		{
			name: "Should make a reservation",
			user: "alice",
			text: "make: 2026-09-10; snacks",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					CreateReservation(date, "snacks", "alice", "alice").
					Return(&entity.Reservation{ID: 1, Type: "snacks", Date: date, User: "alice"}, nil, nil).Times(1)
			},
			wantReply: "Reservation made",
		},
		{
			name: "Should prepend warnings to the confirmation",
			user: "alice",
			text: "make: 2026-09-10; snax",
			buildMock: func(m handlerMocks) {
				warnings := []string{"This is not a reservation type I recognize. Was it a typo?"}
				m.reservations.EXPECT().
					CreateReservation(date, "snax", "alice", "alice").
					Return(&entity.Reservation{ID: 1}, warnings, nil).Times(1)
			},
			wantReply: "This is not a reservation type I recognize. Was it a typo?\nReservation made",
		},
		{
			name: "Should report a conflicting reservation",
			user: "alice",
			text: "make: 2026-09-10; snacks",
			buildMock: func(m handlerMocks) {
				conflict := &domain.ConflictError{
					Existing: &entity.Reservation{ID: 7, Type: "snacks", Date: date, User: "bob"},
				}
				m.reservations.EXPECT().
					CreateReservation(date, "snacks", "alice", "alice").
					Return(nil, nil, conflict).Times(1)
			},
			wantReply: "This slot is already reserved:\nbob: snacks on 2026-09-10.\nDelete this reservation first if you wish to replace it.",
		},
		{
			name:      "Should reject an unreadable date",
			user:      "alice",
			text:      "make: tomorrow; snacks",
			wantReply: `I couldn't read the date "tomorrow", use YYYY-MM-DD`,
		},
		{
			name:      "Should show usage when make has too few arguments",
			user:      "alice",
			text:      "make: 2026-09-10",
			wantReply: "Use: !reservebot make: <date>; <type>",
		},
		{
			name: "Should deny make-for-other to non-admin",
			user: "mallory",
			text: "make-for-other: 2026-09-10; bob; snacks",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					CreateReservation(date, "snacks", "bob", "mallory").
					Return(nil, nil, domain.ErrNotAuthorized).Times(1)
			},
			wantReply: "You do not have permissions to make reservations for other users",
		},
		{
			name: "Should delete a reservation and report the count",
			user: "alice",
			text: "delete: 2026-09-10; snacks",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					DeleteReservation(date, "snacks", "alice").
					Return(1, nil, nil).Times(1)
			},
			wantReply: "Deleted 1 reservations.",
		},
		{
			name: "Should include per-record notices when deletion is denied",
			user: "mallory",
			text: "delete: 2026-09-10; snacks",
			buildMock: func(m handlerMocks) {
				notices := []string{"You do not have permissions to delete reservation:\nbob: snacks on 2026-09-10.\nPlease contact an admin to delete it."}
				m.reservations.EXPECT().
					DeleteReservation(date, "snacks", "mallory").
					Return(0, notices, nil).Times(1)
			},
			wantContains: []string{
				"You do not have permissions to delete reservation:",
				"Deleted 0 reservations.",
			},
		},
		{
			name: "Should report missing id on delete-by-id",
			user: "alice",
			text: "delete-by-id: 42",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					DeleteByID(int64(42), "alice").
					Return(domain.ErrNotFound).Times(1)
			},
			wantReply: "No reservation found with id 42",
		},
		{
			name: "Should delete all reservations as admin",
			user: "alice",
			text: "delete-all",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					DeleteAll("alice").
					Return(int64(12), nil).Times(1)
			},
			wantReply: "Deleted 12 records",
		},
		{
			name: "Should deny delete-all to non-admin",
			user: "mallory",
			text: "delete-all",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					DeleteAll("mallory").
					Return(int64(0), domain.ErrNotAuthorized).Times(1)
			},
			wantReply: "You do not have permissions to delete all scheduled reservations",
		},
		{
			name: "Should list upcoming reservations",
			user: "alice",
			text: "list",
			buildMock: func(m handlerMocks) {
				reservations := []*entity.Reservation{
					{ID: 1, Type: "snacks", Date: date, User: "alice"},
					{ID: 2, Type: "distro", Date: date.AddDate(0, 0, 1), User: "bob"},
				}
				m.reservations.EXPECT().
					ListReservations(gomock.Any(), gomock.Any()).
					Return(reservations, nil).Times(1)
			},
			wantContains: []string{
				"Reservations:",
				"1 alice: snacks on 2026-09-10",
				"2 bob: distro on 2026-09-11",
			},
		},
		{
			name: "Should grant admin status",
			user: "alice",
			text: "make-admin: bob",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					AddAdmin("bob", "alice").
					Return(nil).Times(1)
			},
			wantReply: "Made bob an admin",
		},
		{
			name: "Should deny granting admin status to non-admin",
			user: "mallory",
			text: "make-admin: bob",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					AddAdmin("bob", "mallory").
					Return(domain.ErrNotAuthorized).Times(1)
			},
			wantReply: "You do not have permissions to grant admin status",
		},
		{
			name: "Should revoke admin status",
			user: "alice",
			text: "remove-admin: bob",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					RemoveAdmin("bob", "alice").
					Return(nil).Times(1)
			},
			wantReply: "bob is no longer an admin",
		},
		{
			name: "Should list admins",
			user: "alice",
			text: "list-admins",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					ListAdmins().
					Return([]string{"alice", "bob"}, nil).Times(1)
			},
			wantReply: "Admins:\nalice\nbob\n",
		},
		{
			name: "Should add a known type",
			user: "alice",
			text: "add-known: snacks",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					AddKnownType("snacks", "alice").
					Return(nil).Times(1)
			},
			wantReply: "Made snacks a known event type",
		},
		{
			name: "Should add an expected type with its fallback message",
			user: "alice",
			text: "add-expected: distro; We need a volunteer for distro!",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					AddExpectedType("distro", "We need a volunteer for distro!", "alice").
					Return(nil).Times(1)
			},
			wantReply: "Made distro an expected event type",
		},
		{
			name: "Should list known types",
			user: "alice",
			text: "list-known",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					ListKnownTypes().
					Return([]string{"distro", "snacks"}, nil).Times(1)
			},
			wantReply: "Known types:\ndistro\nsnacks\n",
		},
		{
			name: "Should list expected types",
			user: "alice",
			text: "list-expected",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().
					ListExpectedTypes().
					Return([]*entity.ExpectedType{{Name: "distro", MessageIfNone: "We need a volunteer!"}}, nil).Times(1)
			},
			wantReply: "Expected types:\ndistro\n",
		},
		{
			name: "Should schedule an announcement",
			user: "alice",
			text: "schedule-announcement: 0 9 * * 1; Weekly schedule; t; f",
			buildMock: func(m handlerMocks) {
				m.announcements.EXPECT().
					CreateAnnouncement("0 9 * * 1", "Weekly schedule", true, false, "alice").
					Return(&entity.Announcement{ID: 1}, nil).Times(1)
			},
			wantReply: "Scheduled announcement",
		},
		{
			name: "Should reject an invalid announcement schedule",
			user: "alice",
			text: "schedule-announcement: bad spec; Weekly schedule; t; f",
			buildMock: func(m handlerMocks) {
				m.announcements.EXPECT().
					CreateAnnouncement("bad spec", "Weekly schedule", true, false, "alice").
					Return(nil, domain.ErrInvalidSchedule).Times(1)
			},
			wantReply: `I couldn't read the schedule "bad spec", use standard 5-field cron syntax`,
		},
		{
			name: "Should delete an announcement",
			user: "alice",
			text: "delete-announcement: 3",
			buildMock: func(m handlerMocks) {
				m.announcements.EXPECT().
					DeleteAnnouncement(int64(3), "alice").
					Return(nil).Times(1)
			},
			wantReply: "Announcement deleted",
		},
		{
			name: "Should report missing announcement id",
			user: "alice",
			text: "delete-announcement: 99",
			buildMock: func(m handlerMocks) {
				m.announcements.EXPECT().
					DeleteAnnouncement(int64(99), "alice").
					Return(domain.ErrNotFound).Times(1)
			},
			wantReply: "No announcement found with id 99",
		},
		{
			name: "Should list announcements for an admin",
			user: "alice",
			text: "list-announcements",
			buildMock: func(m handlerMocks) {
				announcements := []*entity.Announcement{
					{ID: 1, Cron: "0 9 * * 1", Text: "Weekly schedule", IncludeSchedule: true},
				}
				m.announcements.EXPECT().
					ListAnnouncements("alice").
					Return(announcements, nil).Times(1)
			},
			wantContains: []string{
				"Announcements:",
				"id: 1, cron: 0 9 * * 1, include_schedule: true, request_volunteers: false",
				"Weekly schedule",
			},
		},
		{
			name:         "Should show help for empty command",
			user:         "alice",
			text:         "",
			wantContains: []string{"Usage:", "!reservebot list"},
		},
		{
			name: "Should show admin help to admin",
			user: "alice",
			text: "admin-help",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().IsAdmin("alice").Return(true, nil).Times(1)
			},
			wantContains: []string{"Admin usage:", "!reservebot delete-all"},
		},
		{
			name: "Should deny admin help to non-admin",
			user: "mallory",
			text: "admin-help",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().IsAdmin("mallory").Return(false, nil).Times(1)
			},
			wantReply: "You do not have permissions to display admin help",
		},
		{
			name: "Should reload the admin seed and schedules",
			user: "alice",
			text: "reload",
			buildMock: func(m handlerMocks) {
				gomock.InOrder(
					m.reservations.EXPECT().IsAdmin("alice").Return(true, nil).Times(1),
					m.reservations.EXPECT().SeedAdmin("alice").Return(nil).Times(1),
					m.announcements.EXPECT().SyncSchedules().Return(nil).Times(1),
				)
			},
			wantReply: "Reloaded admin seed and announcement schedules",
		},
		{
			name: "Should shut down on admin kill",
			user: "alice",
			text: "kill",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().IsAdmin("alice").Return(true, nil).Times(1)
			},
			wantReply:    "Shutting down",
			wantShutdown: true,
		},
		{
			name: "Should deny kill to non-admin",
			user: "mallory",
			text: "kill",
			buildMock: func(m handlerMocks) {
				m.reservations.EXPECT().IsAdmin("mallory").Return(false, nil).Times(1)
			},
			wantReply: "You do not have permissions to kill the bot",
		},
		{
			name:      "Should report unrecognized verbs",
			user:      "alice",
			text:      "frobnicate",
			wantReply: "I didn't recognize that request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, ctrl := newHandlerTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			reply, shutdown := h.Dispatch(tt.user, tt.text)

			assert.Equal(t, tt.wantShutdown, shutdown)
			if tt.wantReply != "" {
				assert.Equal(t, tt.wantReply, reply)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, reply, want)
			}
		})
	}
}

func TestMessageHandler_HandleMessage(t *testing.T) {
	tests := []struct {
		name      string
		event     *slackevents.MessageEvent
		buildMock func(m handlerMocks)
	}{
		{
			name: "Should ignore bot messages",
			event: &slackevents.MessageEvent{
				BotID:   "B123",
				Channel: "C123456789",
				Text:    "!reservebot list",
			},
		},
		{
			name: "Should ignore edited messages",
			event: &slackevents.MessageEvent{
				SubType: "message_changed",
				Channel: "C123456789",
				Text:    "!reservebot list",
			},
		},
		{
			name: "Should ignore other channels",
			event: &slackevents.MessageEvent{
				Channel: "C999999999",
				User:    "U1",
				Text:    "!reservebot list",
			},
		},
		{
			name: "Should ignore messages without the prefix",
			event: &slackevents.MessageEvent{
				Channel: "C123456789",
				User:    "U1",
				Text:    "hello everyone",
			},
		},
		{
			name: "Should dispatch a prefixed command and post the reply",
			event: &slackevents.MessageEvent{
				Channel: "C123456789",
				User:    "U1",
				Text:    "!reservebot list-admins",
			},
			buildMock: func(m handlerMocks) {
				gomock.InOrder(
					m.slackClient.EXPECT().
						GetUserInfo("U1").
						Return(&slack.User{ID: "U1", Name: "alice"}, nil).Times(1),

					m.reservations.EXPECT().
						ListAdmins().
						Return([]string{"alice"}, nil).Times(1),

					m.slackClient.EXPECT().
						PostMessage("C123456789", gomock.Any()).
						Return("C123456789", "1", nil).Times(1),
				)
			},
		},
		{
			name: "Should post a fallback when username resolution fails",
			event: &slackevents.MessageEvent{
				Channel: "C123456789",
				User:    "U1",
				Text:    "!reservebot list",
			},
			buildMock: func(m handlerMocks) {
				gomock.InOrder(
					m.slackClient.EXPECT().
						GetUserInfo("U1").
						Return(nil, assert.AnError).Times(1),

					m.slackClient.EXPECT().
						PostMessage("C123456789", gomock.Any()).
						Return("C123456789", "1", nil).Times(1),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, ctrl := newHandlerTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			h.HandleMessage(tt.event)
		})
	}
}

func TestMessageHandler_KillClosesShutdownChannel(t *testing.T) {
	h, m, ctrl := newHandlerTestMock(t)
	defer ctrl.Finish()

	m.slackClient.EXPECT().
		GetUserInfo("U1").
		Return(&slack.User{ID: "U1", Name: "alice"}, nil).Times(1)
	m.reservations.EXPECT().IsAdmin("alice").Return(true, nil).Times(2)
	m.slackClient.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1", nil).Times(2)

	event := &slackevents.MessageEvent{
		Channel: "C123456789",
		User:    "U1",
		Text:    "!reservebot kill",
	}

	h.HandleMessage(event)

	select {
	case <-h.ShutdownRequested():
	default:
		t.Fatal("expected shutdown channel to be closed after kill")
	}

	// A second kill must not panic on the already-closed channel. The
	// username is served from the cache this time.
	h.HandleMessage(event)
}

func TestMessageHandler_UsernameCache(t *testing.T) {
	h, m, ctrl := newHandlerTestMock(t)
	defer ctrl.Finish()

	// Only one lookup for two messages from the same user.
	m.slackClient.EXPECT().
		GetUserInfo("U1").
		Return(&slack.User{ID: "U1", Name: "alice"}, nil).Times(1)
	m.reservations.EXPECT().
		ListAdmins().
		Return([]string{"alice"}, nil).Times(2)
	m.slackClient.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1", nil).Times(2)

	event := &slackevents.MessageEvent{
		Channel: "C123456789",
		User:    "U1",
		Text:    "!reservebot list-admins",
	}

	h.HandleMessage(event)
	h.HandleMessage(event)
}
