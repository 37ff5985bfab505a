// Package filestore is the document-file persistence adapter: the five ledger
// collections live in one JSON file that is loaded at open and rewritten
// after every mutation. The rewrite is the commit point.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

type document struct {
	Reservations       []*entity.Reservation  `json:"reservations"`
	Admins             []string               `json:"admins"`
	KnownTypes         []string               `json:"known_types"`
	ExpectedTypes      []*entity.ExpectedType `json:"expected_types"`
	Announcements      []*entity.Announcement `json:"announcements"`
	NextReservationID  int64                  `json:"next_reservation_id"`
	NextAnnouncementID int64                  `json:"next_announcement_id"`
}

// Store implements contract.DataManager over a single JSON document.
type Store struct {
	path string

	mu  sync.Mutex
	doc document
}

func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		doc: document{
			NextReservationID:  1,
			NextAnnouncementID: 1,
		},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	if s.doc.NextReservationID == 0 {
		s.doc.NextReservationID = 1
	}
	if s.doc.NextAnnouncementID == 0 {
		s.doc.NextAnnouncementID = 1
	}

	return s, nil
}

func (s *Store) Close() error {
	return nil
}

// flush must be called with the lock held.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot truncate the document.
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// WithTransaction runs fn against the store itself: the document rewrite is
// already all-or-nothing, so there is no separate transaction scope.
func (s *Store) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	return fn(s)
}

func (s *Store) Reservation() contract.ReservationRepo {
	return &reservationRepo{store: s}
}

func (s *Store) Admin() contract.AdminRepo {
	return &adminRepo{store: s}
}

func (s *Store) Type() contract.TypeRepo {
	return &typeRepo{store: s}
}

func (s *Store) Announcement() contract.AnnouncementRepo {
	return &announcementRepo{store: s}
}

type reservationRepo struct {
	store *Store
}

func (r *reservationRepo) Create(reservation *entity.Reservation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation.ID = s.doc.NextReservationID
	s.doc.NextReservationID++
	reservation.CreatedAt = time.Now().UTC()
	s.doc.Reservations = append(s.doc.Reservations, reservation)

	return s.flush()
}

func (r *reservationRepo) GetByDateAndType(date time.Time, resType string) ([]*entity.Reservation, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*entity.Reservation
	for _, res := range s.doc.Reservations {
		if sameDay(res.Date, date) && res.Type == resType {
			matches = append(matches, res)
		}
	}
	return matches, nil
}

func (r *reservationRepo) GetByDateRange(from, to time.Time) ([]*entity.Reservation, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	fromDay := dayStart(from)
	toDay := dayStart(to)

	var matches []*entity.Reservation
	for _, res := range s.doc.Reservations {
		day := dayStart(res.Date)
		if !day.Before(fromDay) && !day.After(toDay) {
			matches = append(matches, res)
		}
	}
	return matches, nil
}

func (r *reservationRepo) DeleteByID(id int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Reservations[:0]
	var deleted int64
	for _, res := range s.doc.Reservations {
		if res.ID == id {
			deleted++
			continue
		}
		kept = append(kept, res)
	}
	s.doc.Reservations = kept

	if deleted == 0 {
		return 0, nil
	}
	return deleted, s.flush()
}

func (r *reservationRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoffDay := dayStart(cutoff)
	kept := s.doc.Reservations[:0]
	var purged int64
	for _, res := range s.doc.Reservations {
		if dayStart(res.Date).Before(cutoffDay) {
			purged++
			continue
		}
		kept = append(kept, res)
	}
	s.doc.Reservations = kept

	if purged == 0 {
		return 0, nil
	}
	return purged, s.flush()
}

func (r *reservationRepo) Count() (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.doc.Reservations)), nil
}

func (r *reservationRepo) DeleteAll() error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Reservations = nil
	return s.flush()
}

type adminRepo struct {
	store *Store
}

func (r *adminRepo) Add(slackName string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.doc.Admins {
		if name == slackName {
			return nil
		}
	}
	s.doc.Admins = append(s.doc.Admins, slackName)
	return s.flush()
}

func (r *adminRepo) Remove(slackName string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Admins[:0]
	var removed int64
	for _, name := range s.doc.Admins {
		if name == slackName {
			removed++
			continue
		}
		kept = append(kept, name)
	}
	s.doc.Admins = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, s.flush()
}

func (r *adminRepo) Exists(slackName string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.doc.Admins {
		if name == slackName {
			return true, nil
		}
	}
	return false, nil
}

func (r *adminRepo) List() ([]string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.doc.Admins...), nil
}

type typeRepo struct {
	store *Store
}

func (r *typeRepo) AddKnown(name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, known := range s.doc.KnownTypes {
		if known == name {
			return nil
		}
	}
	s.doc.KnownTypes = append(s.doc.KnownTypes, name)
	return s.flush()
}

func (r *typeRepo) ListKnown() ([]string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.doc.KnownTypes...), nil
}

func (r *typeRepo) AddExpected(expected *entity.ExpectedType) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.doc.ExpectedTypes {
		if t.Name == expected.Name {
			t.MessageIfNone = expected.MessageIfNone
			return s.flush()
		}
	}
	s.doc.ExpectedTypes = append(s.doc.ExpectedTypes, expected)
	return s.flush()
}

func (r *typeRepo) ListExpected() ([]*entity.ExpectedType, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.ExpectedType(nil), s.doc.ExpectedTypes...), nil
}

type announcementRepo struct {
	store *Store
}

func (r *announcementRepo) Create(announcement *entity.Announcement) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	announcement.ID = s.doc.NextAnnouncementID
	s.doc.NextAnnouncementID++
	announcement.CreatedAt = time.Now().UTC()
	s.doc.Announcements = append(s.doc.Announcements, announcement)

	return s.flush()
}

func (r *announcementRepo) Delete(id int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Announcements[:0]
	var deleted int64
	for _, a := range s.doc.Announcements {
		if a.ID == id {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	s.doc.Announcements = kept

	if deleted == 0 {
		return 0, nil
	}
	return deleted, s.flush()
}

func (r *announcementRepo) List() ([]*entity.Announcement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.Announcement(nil), s.doc.Announcements...), nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dayStart(a).Equal(dayStart(b))
}
