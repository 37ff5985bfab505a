// Package scheduler wraps robfig/cron with an entry registry keyed by
// announcement id, so deleting an announcement also cancels its trigger.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[int64]cron.EntryID
}

func New() *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		entries: make(map[int64]cron.EntryID),
	}
}

func (s *Scheduler) Start() {
	log.Println("Scheduler started")
	s.cron.Start()
}

// Stop stops triggering new jobs; running jobs finish on their own.
func (s *Scheduler) Stop() {
	log.Println("Scheduler stopping...")
	s.cron.Stop()
}

func (s *Scheduler) Validate(cronSpec string) error {
	if _, err := cron.ParseStandard(cronSpec); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronSpec, err)
	}
	return nil
}

// Register adds a recurring job for the announcement, replacing any entry
// already registered under the same id (Sync after reload re-registers
// everything).
func (s *Scheduler) Register(announcementID int64, cronSpec string, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[announcementID]; ok {
		s.cron.Remove(old)
		delete(s.entries, announcementID)
	}

	entryID, err := s.cron.AddFunc(cronSpec, job)
	if err != nil {
		return fmt.Errorf("failed to register job: %w", err)
	}

	s.entries[announcementID] = entryID
	return nil
}

func (s *Scheduler) Unregister(announcementID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.entries[announcementID]
	if !ok {
		return
	}
	s.cron.Remove(entryID)
	delete(s.entries, announcementID)
}

// Schedule adds an anonymous recurring job (retention purge). It is not
// tracked in the announcement registry.
func (s *Scheduler) Schedule(cronSpec string, job func()) error {
	if _, err := s.cron.AddFunc(cronSpec, job); err != nil {
		return fmt.Errorf("failed to schedule job: %w", err)
	}
	return nil
}

// Entries reports how many jobs are currently registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
