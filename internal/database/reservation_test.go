package database

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err, "Failed to parse test date")
	return parsed
}

func TestReservationRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReservationRepo(db.conn)

	reservation := &entity.Reservation{
		Type: "snacks",
		Date: day(t, "2026-09-10"),
		User: "alice",
	}

	err := repo.Create(reservation)
	require.NoError(t, err, "Failed to create reservation")

	assert.NotZero(t, reservation.ID, "Expected reservation ID to be set after creation")
}

func TestReservationRepository_GetByDateAndType(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReservationRepo(db.conn)

	original := &entity.Reservation{
		Type: "snacks",
		Date: day(t, "2026-09-10"),
		User: "alice",
	}
	err := repo.Create(original)
	require.NoError(t, err, "Failed to create test reservation")

	// Same date, different type must not match
	other := &entity.Reservation{
		Type: "distro",
		Date: day(t, "2026-09-10"),
		User: "bob",
	}
	err = repo.Create(other)
	require.NoError(t, err, "Failed to create test reservation")

	found, err := repo.GetByDateAndType(day(t, "2026-09-10"), "snacks")
	require.NoError(t, err, "Failed to get reservation by date and type")
	require.Len(t, found, 1, "Expected exactly one match")

	assert.Equal(t, original.ID, found[0].ID)
	assert.Equal(t, "snacks", found[0].Type)
	assert.Equal(t, day(t, "2026-09-10"), found[0].Date)
	assert.Equal(t, "alice", found[0].User)

	// No match on a different date
	none, err := repo.GetByDateAndType(day(t, "2026-09-11"), "snacks")
	require.NoError(t, err, "Unexpected error when no reservation matches")
	assert.Empty(t, none)
}

func TestReservationRepository_GetByDateRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReservationRepo(db.conn)

	reservations := []*entity.Reservation{
		{Type: "snacks", Date: day(t, "2026-09-08"), User: "alice"},
		{Type: "distro", Date: day(t, "2026-09-10"), User: "bob"},
		{Type: "snacks", Date: day(t, "2026-09-20"), User: "carol"},
	}
	for _, r := range reservations {
		err := repo.Create(r)
		require.NoError(t, err, "Failed to create test reservation")
	}

	// Range is inclusive on both ends
	found, err := repo.GetByDateRange(day(t, "2026-09-08"), day(t, "2026-09-10"))
	require.NoError(t, err, "Failed to get reservations by date range")
	require.Len(t, found, 2, "Expected 2 reservations in range")

	assert.Equal(t, "alice", found[0].User)
	assert.Equal(t, "bob", found[1].User)
}

func TestReservationRepository_DeleteByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReservationRepo(db.conn)

	reservation := &entity.Reservation{
		Type: "snacks",
		Date: day(t, "2026-09-10"),
		User: "alice",
	}
	err := repo.Create(reservation)
	require.NoError(t, err, "Failed to create test reservation")

	deleted, err := repo.DeleteByID(reservation.ID)
	require.NoError(t, err, "Failed to delete reservation")
	assert.Equal(t, int64(1), deleted)

	// Deleting again affects nothing
	deleted, err = repo.DeleteByID(reservation.ID)
	require.NoError(t, err, "Unexpected error on repeated delete")
	assert.Equal(t, int64(0), deleted)
}

func TestReservationRepository_DeleteOlderThan(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReservationRepo(db.conn)

	reservations := []*entity.Reservation{
		{Type: "snacks", Date: day(t, "2026-08-01"), User: "alice"},
		{Type: "distro", Date: day(t, "2026-08-15"), User: "bob"},
		{Type: "snacks", Date: day(t, "2026-09-10"), User: "carol"},
	}
	for _, r := range reservations {
		err := repo.Create(r)
		require.NoError(t, err, "Failed to create test reservation")
	}

	purged, err := repo.DeleteOlderThan(day(t, "2026-09-01"))
	require.NoError(t, err, "Failed to purge old reservations")
	assert.Equal(t, int64(2), purged)

	// The cutoff itself and anything newer survives
	remaining, err := repo.GetByDateRange(day(t, "2026-01-01"), day(t, "2026-12-31"))
	require.NoError(t, err, "Failed to list remaining reservations")
	require.Len(t, remaining, 1)
	assert.Equal(t, "carol", remaining[0].User)
}

func TestReservationRepository_CountAndDeleteAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReservationRepo(db.conn)

	count, err := repo.Count()
	require.NoError(t, err, "Failed to count reservations")
	assert.Equal(t, int64(0), count)

	for i, user := range []string{"alice", "bob", "carol"} {
		err := repo.Create(&entity.Reservation{
			Type: "snacks",
			Date: day(t, "2026-09-10").AddDate(0, 0, i),
			User: user,
		})
		require.NoError(t, err, "Failed to create test reservation")
	}

	count, err = repo.Count()
	require.NoError(t, err, "Failed to count reservations")
	assert.Equal(t, int64(3), count)

	err = repo.DeleteAll()
	require.NoError(t, err, "Failed to delete all reservations")

	count, err = repo.Count()
	require.NoError(t, err, "Failed to count reservations")
	assert.Equal(t, int64(0), count)
}
