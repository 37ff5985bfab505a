package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

// DataManager aggregates all repository interfaces. Both storage adapters
// (SQLite and document file) implement it.
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reservation() ReservationRepo
	Admin() AdminRepo
	Type() TypeRepo
	Announcement() AnnouncementRepo
}

// ReservationRepo defines the contract for reservation persistence
type ReservationRepo interface {
	Create(reservation *entity.Reservation) error
	GetByDateAndType(date time.Time, resType string) ([]*entity.Reservation, error)
	GetByDateRange(from, to time.Time) ([]*entity.Reservation, error)
	DeleteByID(id int64) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
	Count() (int64, error)
	DeleteAll() error
}

// AdminRepo defines the contract for the admin set
type AdminRepo interface {
	Add(slackName string) error
	Remove(slackName string) (int64, error)
	Exists(slackName string) (bool, error)
	List() ([]string, error)
}

// TypeRepo defines the contract for known and expected reservation types
type TypeRepo interface {
	AddKnown(name string) error
	ListKnown() ([]string, error)
	AddExpected(expected *entity.ExpectedType) error
	ListExpected() ([]*entity.ExpectedType, error)
}

// AnnouncementRepo defines the contract for announcement persistence
type AnnouncementRepo interface {
	Create(announcement *entity.Announcement) error
	Delete(id int64) (int64, error)
	List() ([]*entity.Announcement, error)
}
