package contract

//go:generate mockgen -source=scheduler.go -destination=../../../mocks/scheduler.go -package=mocks

// AnnouncementScheduler registers recurring announcement jobs. Entries are
// keyed by announcement id so a deleted announcement can have its trigger
// cancelled.
type AnnouncementScheduler interface {
	Validate(cronSpec string) error
	Register(announcementID int64, cronSpec string, job func()) error
	Unregister(announcementID int64)
}
