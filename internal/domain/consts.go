package domain

import "time"

// DateLayout is the calendar-day format accepted in commands and used in
// replies.
const DateLayout = "2006-01-02"

// ScheduleWindow is how far ahead `list` and announcements look for
// reservations.
const ScheduleWindow = 7 * 24 * time.Hour

// Storage driver names accepted by STORAGE_DRIVER.
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverFile   = "file"
)
