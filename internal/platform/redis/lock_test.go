// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vubib/internal/platform/redis"
)

// newServer starts an in-memory Redis and a client connected to it.
func newServer(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

/*
TestRunLock_Nil verifies that a nil lock is a no-op when locking is disabled.
*/
func TestRunLock_Nil(t *testing.T) {
	var lock *redis.RunLock

	assert.NoError(t, lock.Acquire(context.Background()))
	assert.NoError(t, lock.Refresh(context.Background()))
	assert.NoError(t, lock.Release(context.Background()))
	assert.Empty(t, lock.Key())

	lock.Keep(context.Background(), slog.Default())()
}

/*
TestRunLock_Key namespaces the lock per command.
*/
func TestRunLock_Key(t *testing.T) {
	lock := redis.NewRunLock(nil, "index", "run-1", time.Hour)
	assert.Equal(t, "vubib:lock:index", lock.Key())
}

/*
TestRunLock_AcquireHeld rejects a second run while the first holds the key.
*/
func TestRunLock_AcquireHeld(t *testing.T) {
	mr, client := newServer(t)
	ctx := context.Background()

	first := redis.NewRunLock(client, "index", "run-1", time.Hour)
	second := redis.NewRunLock(client, "index", "run-2", time.Hour)

	require.NoError(t, first.Acquire(ctx))
	assert.ErrorIs(t, second.Acquire(ctx), redis.ErrLocked)

	owner, err := mr.Get("vubib:lock:index")
	require.NoError(t, err)
	assert.Equal(t, "run-1", owner)
	assert.Equal(t, time.Hour, mr.TTL("vubib:lock:index"))

	// Other commands lock independently.
	assert.NoError(t, redis.NewRunLock(client, "delete", "run-2", time.Hour).Acquire(ctx))
}

/*
TestRunLock_AcquireAfterExpiry lets the next run in once the TTL has elapsed.
*/
func TestRunLock_AcquireAfterExpiry(t *testing.T) {
	mr, client := newServer(t)
	ctx := context.Background()

	require.NoError(t, redis.NewRunLock(client, "index", "run-1", time.Minute).Acquire(ctx))
	mr.FastForward(2 * time.Minute)

	assert.NoError(t, redis.NewRunLock(client, "index", "run-2", time.Minute).Acquire(ctx))
}

/*
TestRunLock_ReleaseOwnerOnly deletes the key only for the run whose token it holds.
*/
func TestRunLock_ReleaseOwnerOnly(t *testing.T) {
	mr, client := newServer(t)
	ctx := context.Background()

	owner := redis.NewRunLock(client, "index", "run-1", time.Hour)
	other := redis.NewRunLock(client, "index", "run-2", time.Hour)
	require.NoError(t, owner.Acquire(ctx))

	require.NoError(t, other.Release(ctx))
	assert.True(t, mr.Exists("vubib:lock:index"))

	require.NoError(t, owner.Release(ctx))
	assert.False(t, mr.Exists("vubib:lock:index"))

	// Released, so the next run may take it.
	assert.NoError(t, other.Acquire(ctx))
}

/*
TestRunLock_Refresh resets the TTL for the owner and reports a lost lock.
*/
func TestRunLock_Refresh(t *testing.T) {
	mr, client := newServer(t)
	ctx := context.Background()

	lock := redis.NewRunLock(client, "index", "run-1", time.Hour)
	require.NoError(t, lock.Acquire(ctx))

	mr.FastForward(50 * time.Minute)
	require.Equal(t, 10*time.Minute, mr.TTL("vubib:lock:index"))

	require.NoError(t, lock.Refresh(ctx))
	assert.Equal(t, time.Hour, mr.TTL("vubib:lock:index"))

	// Another run took the key over after expiry.
	require.NoError(t, mr.Set("vubib:lock:index", "run-2"))
	assert.ErrorIs(t, lock.Refresh(ctx), redis.ErrLost)
	owner, _ := mr.Get("vubib:lock:index")
	assert.Equal(t, "run-2", owner)
}

/*
TestRunLock_Keep extends the TTL in the background until stopped.
*/
func TestRunLock_Keep(t *testing.T) {
	mr, client := newServer(t)
	ctx := context.Background()

	lock := redis.NewRunLock(client, "index", "run-1", 30*time.Millisecond)
	require.NoError(t, lock.Acquire(ctx))
	mr.SetTTL("vubib:lock:index", time.Millisecond)

	stop := lock.Keep(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Eventually(t, func() bool {
		return mr.TTL("vubib:lock:index") == 30*time.Millisecond
	}, time.Second, 5*time.Millisecond)

	stop()
	stop()
	assert.True(t, mr.Exists("vubib:lock:index"))
}
