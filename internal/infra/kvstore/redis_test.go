package kvstore

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChallenge(t *testing.T) {
	expires := time.Date(2024, 3, 10, 9, 5, 0, 0, time.UTC)

	challenge, err := decodeChallenge("h1", map[string]string{
		fieldPhone:     "+919876543210",
		fieldCodeHash:  "hash",
		fieldAttempts:  "2",
		fieldExpiresAt: "1710061500000",
	})
	require.NoError(t, err)
	assert.Equal(t, "h1", challenge.Handle)
	assert.Equal(t, 2, challenge.Attempts)
	assert.True(t, challenge.ExpiresAt.Equal(expires))

	_, err = decodeChallenge("h1", map[string]string{fieldAttempts: "x", fieldExpiresAt: "1"})
	assert.Error(t, err)
}

// TestRedisStore_Integration runs against a real server when REDIS_ADDR is set.
func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	store := newRedisStore(client)

	handle := uuid.NewString()
	require.NoError(t, store.Save(ctx, &entity.OTPChallenge{
		Handle:    handle,
		Phone:     "+919876543210",
		CodeHash:  "hash",
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	attempts, err := store.IncrementAttempts(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)

	found, err := store.Find(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Attempts)

	taken, err := store.Take(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", taken.Phone)
	assert.Equal(t, 1, taken.Attempts)

	_, err = store.Take(ctx, handle)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)

	require.NoError(t, store.Delete(ctx, handle))
	_, err = store.IncrementAttempts(ctx, handle)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)

	tokenID := uuid.NewString()
	require.NoError(t, store.Revoke(ctx, tokenID, time.Now().Add(time.Minute)))
	revoked, err := store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)
}
