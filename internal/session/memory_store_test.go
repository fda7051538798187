package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created, err := store.Create(ctx, "identity-1", "tok-1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "identity-1", created.IdentityID)
	assert.Equal(t, created.CreatedAt.Add(TTL), created.ExpiresAt)

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := store.Get(ctx, "tok-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreLazyExpiryEvicts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	base := time.Now()
	store.now = func() time.Time { return base }

	_, err := store.Create(ctx, "identity-1", "tok-1")
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(TTL) }

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got, "expired session must not be returned")

	// the expired record was removed, not just skipped
	existed, err := store.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Create(ctx, "identity-1", "tok-1")
	require.NoError(t, err)

	existed, err := store.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = store.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryStoreMultipleSessionsPerIdentity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Create(ctx, "identity-1", "tok-a")
	require.NoError(t, err)
	_, err = store.Create(ctx, "identity-1", "tok-b")
	require.NoError(t, err)

	a, err := store.Get(ctx, "tok-a")
	require.NoError(t, err)
	b, err := store.Get(ctx, "tok-b")
	require.NoError(t, err)

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", n%8)
			_, _ = store.Create(ctx, "identity-1", tok)
			_, _ = store.Get(ctx, tok)
			_, _ = store.Delete(ctx, tok)
		}(i)
	}
	wg.Wait()
}
