package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

type reservationRepo struct {
	db dbConn
}

func newReservationRepo(db dbConn) contract.ReservationRepo {
	return &reservationRepo{db: db}
}

// Dates are stored as YYYY-MM-DD text so range comparisons stay
// driver-independent.
func (r *reservationRepo) Create(reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (type, date, user)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		reservation.Type,
		reservation.Date.Format(domain.DateLayout),
		reservation.User,
	)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reservation.ID = id
	return nil
}

func (r *reservationRepo) GetByDateAndType(date time.Time, resType string) ([]*entity.Reservation, error) {
	query := `
		SELECT id, type, date, user, created_at
		FROM reservations
		WHERE date = ? AND type = ?
	`

	rows, err := r.db.Query(query, date.Format(domain.DateLayout), resType)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *reservationRepo) GetByDateRange(from, to time.Time) ([]*entity.Reservation, error) {
	// Insertion (rowid) order, not date order.
	query := `
		SELECT id, type, date, user, created_at
		FROM reservations
		WHERE date BETWEEN ? AND ?
	`

	rows, err := r.db.Query(query, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *reservationRepo) DeleteByID(id int64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reservation: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return deleted, nil
}

func (r *reservationRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM reservations WHERE date < ?`, cutoff.Format(domain.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to purge reservations: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return purged, nil
}

func (r *reservationRepo) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

func (r *reservationRepo) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM reservations`); err != nil {
		return fmt.Errorf("failed to delete all reservations: %w", err)
	}
	return nil
}

func scanReservations(rows *sql.Rows) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		reservation := &entity.Reservation{}
		var date string
		err := rows.Scan(
			&reservation.ID,
			&reservation.Type,
			&date,
			&reservation.User,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}

		parsed, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reservation date: %w", err)
		}
		reservation.Date = parsed

		reservations = append(reservations, reservation)
	}

	return reservations, nil
}
