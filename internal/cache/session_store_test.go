package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

func newTestSessionStore(t *testing.T) *SessionStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSessionStore(client)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	// Empty slot reads as signed out, not an error.
	identity, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)

	saved := &models.Identity{UID: "user_1", Email: "alice@example.com", Role: models.RoleStudent}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	require.NoError(t, store.Clear(ctx))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing an already empty slot is fine.
	assert.NoError(t, store.Clear(ctx))
}

func TestSessionStore_NilClient(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	// Every operation reports the missing client instead of panicking.
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrCacheNotAvailable)

	err = store.Save(ctx, &models.Identity{UID: "user_1"})
	assert.ErrorIs(t, err, ErrCacheNotAvailable)

	err = store.Clear(ctx)
	assert.ErrorIs(t, err, ErrCacheNotAvailable)
}
