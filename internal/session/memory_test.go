package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", 7))

	userID, err := store.UserID(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	require.NoError(t, store.Delete(ctx, "sid-1"))

	_, err = store.UserID(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	defer store.Close()

	_, err := store.UserID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSessionRejected(t *testing.T) {
	// 清理周期设得很长，验证即使还没被扫掉，过期会话也会被拒绝
	store := NewMemoryStore(20*time.Millisecond, time.Hour)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", 7))

	time.Sleep(50 * time.Millisecond)

	_, err := store.UserID(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	store := NewMemoryStore(10*time.Millisecond, 20*time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "sid-1", 7))
	require.NoError(t, store.Create(ctx, "sid-2", 8))

	time.Sleep(80 * time.Millisecond)

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Empty(t, store.sessions)
}
