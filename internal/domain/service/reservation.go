package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

type reservationService struct {
	dm contract.DataManager

	// mu serializes ledger mutations: the dispatch loop is a single worker,
	// but cron jobs (retention purge) run on their own goroutines.
	mu  sync.Mutex
	now func() time.Time
}

func newReservation(dm contract.DataManager) *reservationService {
	return &reservationService{
		dm:  dm,
		now: time.Now,
	}
}

func (s *reservationService) IsAdmin(slackName string) (bool, error) {
	return s.dm.Admin().Exists(slackName)
}

// requireAdmin fails closed: any lookup error or a missing admin row denies
// the operation before side effects happen.
func (s *reservationService) requireAdmin(actingUser string) error {
	isAdmin, err := s.dm.Admin().Exists(actingUser)
	if err != nil {
		return fmt.Errorf("failed to check admin status: %w", err)
	}
	if !isAdmin {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *reservationService) ListReservations(from, to time.Time) ([]*entity.Reservation, error) {
	return s.dm.Reservation().GetByDateRange(from, to)
}

func (s *reservationService) CreateReservation(date time.Time, resType, forUser, actingUser string) (*entity.Reservation, []string, error) {
	if forUser != actingUser {
		if err := s.requireAdmin(actingUser); err != nil {
			return nil, nil, err
		}
	}

	var warnings []string

	knownTypes, err := s.dm.Type().ListKnown()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list known types: %w", err)
	}
	if !containsString(knownTypes, resType) {
		warnings = append(warnings, "This is not a reservation type I recognize. Was it a typo?")
	}

	// Past-date check applies to self-service creation only; like the type
	// check it warns but never blocks.
	if forUser == actingUser && dateOnly(date).Before(dateOnly(s.now())) {
		warnings = append(warnings, "This reservation is in the past. Was that a typo?")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflicting, err := s.dm.Reservation().GetByDateAndType(date, resType)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check for conflicts: %w", err)
	}
	if len(conflicting) > 0 {
		return nil, warnings, &domain.ConflictError{Existing: conflicting[0]}
	}

	reservation := &entity.Reservation{
		Type: resType,
		Date: dateOnly(date),
		User: forUser,
	}
	if err := s.dm.Reservation().Create(reservation); err != nil {
		return nil, nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, warnings, nil
}

func (s *reservationService) DeleteReservation(date time.Time, resType, actingUser string) (int, []string, error) {
	isAdmin, err := s.dm.Admin().Exists(actingUser)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to check admin status: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// At most one record matches under the no-double-booking invariant, but
	// the scan keeps the general shape on purpose.
	matches, err := s.dm.Reservation().GetByDateAndType(date, resType)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to find reservations: %w", err)
	}

	var deleted int
	var notices []string
	for _, r := range matches {
		if r.User != actingUser && !isAdmin {
			notices = append(notices, fmt.Sprintf(
				"You do not have permissions to delete reservation:\n%s: %s on %s.\nPlease contact an admin to delete it.",
				r.User, r.Type, r.Date.Format(domain.DateLayout)))
			continue
		}
		if _, err := s.dm.Reservation().DeleteByID(r.ID); err != nil {
			return deleted, notices, fmt.Errorf("failed to delete reservation %d: %w", r.ID, err)
		}
		deleted++
	}

	return deleted, notices, nil
}

func (s *reservationService) DeleteByID(id int64, actingUser string) error {
	if err := s.requireAdmin(actingUser); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.dm.Reservation().DeleteByID(id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *reservationService) DeleteAll(actingUser string) (int64, error) {
	if err := s.requireAdmin(actingUser); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.dm.Reservation().Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	if err := s.dm.Reservation().DeleteAll(); err != nil {
		return 0, fmt.Errorf("failed to delete all reservations: %w", err)
	}
	return count, nil
}

func (s *reservationService) PurgeOlderThan(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged, err := s.dm.Reservation().DeleteOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge reservations: %w", err)
	}
	return purged, nil
}

func (s *reservationService) AddKnownType(name, actingUser string) error {
	if err := s.requireAdmin(actingUser); err != nil {
		return err
	}
	if err := s.dm.Type().AddKnown(name); err != nil {
		return fmt.Errorf("failed to add known type: %w", err)
	}
	return nil
}

func (s *reservationService) AddExpectedType(name, messageIfNone, actingUser string) error {
	if err := s.requireAdmin(actingUser); err != nil {
		return err
	}
	expected := &entity.ExpectedType{
		Name:          name,
		MessageIfNone: messageIfNone,
	}
	if err := s.dm.Type().AddExpected(expected); err != nil {
		return fmt.Errorf("failed to add expected type: %w", err)
	}
	return nil
}

func (s *reservationService) ListKnownTypes() ([]string, error) {
	return s.dm.Type().ListKnown()
}

func (s *reservationService) ListExpectedTypes() ([]*entity.ExpectedType, error) {
	return s.dm.Type().ListExpected()
}

func (s *reservationService) AddAdmin(slackName, actingUser string) error {
	if err := s.requireAdmin(actingUser); err != nil {
		return err
	}
	if err := s.dm.Admin().Add(slackName); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}
	return nil
}

// RemoveAdmin has no last-admin guard: revoking the only admin is allowed and
// locks every privileged command until the bootstrap admin is re-seeded.
func (s *reservationService) RemoveAdmin(slackName, actingUser string) error {
	if err := s.requireAdmin(actingUser); err != nil {
		return err
	}
	if _, err := s.dm.Admin().Remove(slackName); err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}
	return nil
}

func (s *reservationService) ListAdmins() ([]string, error) {
	return s.dm.Admin().List()
}

func (s *reservationService) SeedAdmin(slackName string) error {
	exists, err := s.dm.Admin().Exists(slackName)
	if err != nil {
		return fmt.Errorf("failed to check admin status: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.dm.Admin().Add(slackName); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
