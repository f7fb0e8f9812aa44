// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/vubib/internal/platform/constants"
)

// ErrLocked is returned by [RunLock.Acquire] when another run holds the lock.
var ErrLocked = errors.New("redis: run lock is held by another process")

// ErrLost is returned by [RunLock.Refresh] once the key expired or was taken
// over by another run.
var ErrLost = errors.New("redis: run lock is no longer held")

// refreshScript resets the TTL only if the key still holds our token.
var refreshScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RunLock guards one named command (e.g. "index") against overlapping runs.
//
// A nil *RunLock is valid and never blocks, so callers can skip locking when
// no Redis URL is configured.
type RunLock struct {
	client redis.Cmdable
	key    string
	token  string
	ttl    time.Duration
}

// NewRunLock builds a lock for the given command name. The token identifies
// this run (a UUIDv7 run id) so that only its owner can release it.
func NewRunLock(client redis.Cmdable, name, token string, ttl time.Duration) *RunLock {
	return &RunLock{
		client: client,
		key:    constants.RedisPrefixRunLock + name,
		token:  token,
		ttl:    ttl,
	}
}

// Key returns the Redis key backing the lock.
func (lock *RunLock) Key() string {
	if lock == nil {
		return ""
	}
	return lock.key
}

// Acquire takes the lock or returns [ErrLocked].
func (lock *RunLock) Acquire(context stdctx.Context) error {
	if lock == nil {
		return nil
	}

	ok, err := lock.client.SetNX(context, lock.key, lock.token, lock.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis: acquire %s: %w", lock.key, err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Release drops the lock if this run still owns it.
func (lock *RunLock) Release(context stdctx.Context) error {
	if lock == nil {
		return nil
	}

	if err := releaseScript.Run(context, lock.client, []string{lock.key}, lock.token).Err(); err != nil {
		return fmt.Errorf("redis: release %s: %w", lock.key, err)
	}
	return nil
}

// Refresh resets the lock TTL, or returns [ErrLost] when this run no longer
// owns it.
func (lock *RunLock) Refresh(context stdctx.Context) error {
	if lock == nil {
		return nil
	}

	n, err := refreshScript.Run(context, lock.client, []string{lock.key}, lock.token, lock.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("redis: refresh %s: %w", lock.key, err)
	}
	if n == 0 {
		return ErrLost
	}
	return nil
}

/*
Keep refreshes the lock every third of its TTL until the context ends or the
returned stop function is called.

Parameters:
  - context: stdctx.Context (the command context, not a startup timeout)
  - logger: *slog.Logger

Returns:
  - func(): Stops the refresher and waits for it to exit; safe to call twice
*/
func (lock *RunLock) Keep(context stdctx.Context, logger *slog.Logger) func() {
	if lock == nil || lock.ttl <= 0 {
		return func() {}
	}

	context, cancel := stdctx.WithCancel(context)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(max(lock.ttl/3, time.Millisecond))
		defer ticker.Stop()

		for {
			select {
			case <-context.Done():
				return
			case <-ticker.C:
			}

			err := lock.Refresh(context)
			switch {
			case err == nil:
				logger.Debug("run_lock_refreshed", slog.String("key", lock.key))
			case errors.Is(err, ErrLost):
				logger.Error("run_lock_lost", slog.String("key", lock.key))
				return
			case context.Err() != nil:
				return
			default:
				logger.Warn("run_lock_refresh_failed", slog.String("key", lock.key), slog.Any("error", err))
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
