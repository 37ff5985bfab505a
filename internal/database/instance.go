package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	reservationRepo  contract.ReservationRepo
	adminRepo        contract.AdminRepo
	typeRepo         contract.TypeRepo
	announcementRepo contract.AnnouncementRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:               db,
		reservationRepo:  newReservationRepo(db.conn),
		adminRepo:        newAdminRepo(db.conn),
		typeRepo:         newTypeRepo(db.conn),
		announcementRepo: newAnnouncementRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		reservationRepo:  newReservationRepo(db),
		adminRepo:        newAdminRepo(db),
		typeRepo:         newTypeRepo(db),
		announcementRepo: newAnnouncementRepo(db),
	}
}

func (i *instance) Reservation() contract.ReservationRepo {
	return i.reservationRepo
}

func (i *instance) Admin() contract.AdminRepo {
	return i.adminRepo
}

func (i *instance) Type() contract.TypeRepo {
	return i.typeRepo
}

func (i *instance) Announcement() contract.AnnouncementRepo {
	return i.announcementRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
