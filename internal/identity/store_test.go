package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndLookup(t *testing.T) {
	store := NewStore()

	created, err := store.Create("a@x.com", "stored-hash", "gameA")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, "gameA", created.GameID)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := store.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestDuplicateEmailCaseInsensitive(t *testing.T) {
	store := NewStore()

	_, err := store.Create("a@x.com", "h", "")
	require.NoError(t, err)

	_, err = store.Create("A@X.COM", "h", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLookupNormalizesEmailCase(t *testing.T) {
	store := NewStore()

	_, err := store.Create("A@X.com", "h", "")
	require.NoError(t, err)

	id, err := store.GetByEmail("a@x.COM")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", id.Email)
}

func TestNotFound(t *testing.T) {
	store := NewStore()

	_, err := store.GetByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := NewStore()

	created, err := store.Create("a@x.com", "h", "gameA")
	require.NoError(t, err)

	created.GameID = "tampered"

	fresh, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "gameA", fresh.GameID)
}
