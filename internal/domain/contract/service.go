package contract

import (
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

// ReservationService is the reservation ledger: it owns the reservation,
// admin and type collections and enforces the conflict and authorization
// invariants.
type ReservationService interface {
	ListReservations(from, to time.Time) ([]*entity.Reservation, error)
	// CreateReservation makes a reservation for forUser. Warnings (unknown
	// type, past date) are returned as strings and never block the create.
	// Creating for another user requires actingUser to be an admin.
	CreateReservation(date time.Time, resType, forUser, actingUser string) (*entity.Reservation, []string, error)
	// DeleteReservation removes every (date, type) match the actor owns or
	// may delete as admin. Records the actor may not delete stay in place
	// and produce a notice each.
	DeleteReservation(date time.Time, resType, actingUser string) (int, []string, error)
	DeleteByID(id int64, actingUser string) error
	DeleteAll(actingUser string) (int64, error)
	// PurgeOlderThan is scheduler-invoked and takes no acting user.
	PurgeOlderThan(cutoff time.Time) (int64, error)

	AddKnownType(name, actingUser string) error
	AddExpectedType(name, messageIfNone, actingUser string) error
	ListKnownTypes() ([]string, error)
	ListExpectedTypes() ([]*entity.ExpectedType, error)

	AddAdmin(slackName, actingUser string) error
	RemoveAdmin(slackName, actingUser string) error
	ListAdmins() ([]string, error)
	IsAdmin(slackName string) (bool, error)
	// SeedAdmin inserts the bootstrap admin if missing. It runs at startup,
	// which is also the recovery path after the last admin is removed.
	SeedAdmin(slackName string) error
}

// AnnouncementService manages recurring announcements and keeps the cron
// registry in sync with the persisted records.
type AnnouncementService interface {
	CreateAnnouncement(cronSpec, text string, includeSchedule, requestVolunteers bool, actingUser string) (*entity.Announcement, error)
	DeleteAnnouncement(id int64, actingUser string) error
	ListAnnouncements(actingUser string) ([]*entity.Announcement, error)
	// SyncSchedules registers a trigger for every persisted announcement.
	SyncSchedules() error
}
