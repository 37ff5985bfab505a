package domain

import (
	"errors"
	"fmt"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

var (
	// ErrNotAuthorized is returned when the acting user lacks admin rights
	// (or ownership) for the requested operation. Operations fail closed
	// with no partial side effects.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound is returned by id-addressed deletes that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSchedule is returned when an announcement schedule does not
	// parse as a cron expression.
	ErrInvalidSchedule = errors.New("invalid schedule expression")
)

// ConflictError is returned when a reservation already exists for the same
// (date, type) slot. It carries the conflicting record so callers can show it.
type ConflictError struct {
	Existing *entity.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot already reserved by %s: %s on %s",
		e.Existing.User, e.Existing.Type, e.Existing.Date.Format(DateLayout))
}
