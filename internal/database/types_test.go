package database

import (
	"testing"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRepository_Known(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTypeRepo(db.conn)

	names, err := repo.ListKnown()
	require.NoError(t, err, "Failed to list known types")
	assert.Empty(t, names)

	for _, name := range []string{"snacks", "distro", "snacks"} {
		err := repo.AddKnown(name)
		require.NoError(t, err, "Failed to add known type")
	}

	names, err = repo.ListKnown()
	require.NoError(t, err, "Failed to list known types")

	// Duplicates are ignored, listing is sorted by name
	assert.Equal(t, []string{"distro", "snacks"}, names)
}

func TestTypeRepository_Expected(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTypeRepo(db.conn)

	err := repo.AddExpected(&entity.ExpectedType{
		Name:          "snacks",
		MessageIfNone: "We need a volunteer for snacks!",
	})
	require.NoError(t, err, "Failed to add expected type")

	err = repo.AddExpected(&entity.ExpectedType{
		Name:          "distro",
		MessageIfNone: "We need a volunteer for distro!",
	})
	require.NoError(t, err, "Failed to add expected type")

	types, err := repo.ListExpected()
	require.NoError(t, err, "Failed to list expected types")
	require.Len(t, types, 2)

	assert.Equal(t, "distro", types[0].Name)
	assert.Equal(t, "We need a volunteer for distro!", types[0].MessageIfNone)
	assert.Equal(t, "snacks", types[1].Name)
}

func TestTypeRepository_AddExpectedUpdatesMessage(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTypeRepo(db.conn)

	err := repo.AddExpected(&entity.ExpectedType{
		Name:          "snacks",
		MessageIfNone: "Old message",
	})
	require.NoError(t, err, "Failed to add expected type")

	// Re-adding under the same name replaces the fallback message
	err = repo.AddExpected(&entity.ExpectedType{
		Name:          "snacks",
		MessageIfNone: "New message",
	})
	require.NoError(t, err, "Failed to update expected type")

	types, err := repo.ListExpected()
	require.NoError(t, err, "Failed to list expected types")
	require.Len(t, types, 1)

	assert.Equal(t, "New message", types[0].MessageIfNone)
}
