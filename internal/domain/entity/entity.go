package entity

import "time"

// Reservation is a claimed (date, type) slot owned by a user. At most one
// reservation exists per (date, type) pair; replacement is delete-then-create.
type Reservation struct {
	ID        int64     `json:"id" db:"id"`
	Type      string    `json:"type" db:"type"`
	Date      time.Time `json:"date" db:"date"` // calendar day, no time-of-day
	User      string    `json:"user" db:"user"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ExpectedType is a category that recurring announcements check for coverage
// in the upcoming window. MessageIfNone is appended when no reservation of
// this type exists in the window.
type ExpectedType struct {
	Name          string `json:"name" db:"name"`
	MessageIfNone string `json:"message_if_none" db:"message_if_none"`
}

// Announcement is a recurring scheduled message derived from ledger state.
type Announcement struct {
	ID                int64     `json:"id" db:"id"`
	Cron              string    `json:"cron" db:"cron"`
	Text              string    `json:"text" db:"text"`
	IncludeSchedule   bool      `json:"include_schedule" db:"include_schedule"`
	RequestVolunteers bool      `json:"request_volunteers" db:"request_volunteers"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
