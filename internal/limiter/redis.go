package limiter

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps failure counters and blocks in Redis: a counter per
// (username, ip) expiring after the window, and a block key expiring after
// the block duration.
type Redis struct {
	rdb      redis.Cmdable
	prefix   string
	window   time.Duration
	maxFails int
	blockFor time.Duration
}

// NewRedis constructs a Redis-backed limiter. Keys are namespaced by prefix.
func NewRedis(rdb redis.Cmdable, prefix string, window time.Duration, maxFails int, blockFor time.Duration) *Redis {
	if prefix == "" {
		prefix = "relay:login"
	}
	return &Redis{rdb: rdb, prefix: prefix, window: window, maxFails: maxFails, blockFor: blockFor}
}

func (l *Redis) failKey(username string, ipHash []byte) string {
	return l.prefix + ":fail:" + username + ":" + hex.EncodeToString(ipHash)
}

func (l *Redis) blockKey(username string, ipHash []byte) string {
	return l.prefix + ":block:" + username + ":" + hex.EncodeToString(ipHash)
}

// Allow reports whether a block key is present and how long it lasts.
func (l *Redis) Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error) {
	ttl, err := l.rdb.PTTL(ctx, l.blockKey(username, ipHash)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("limiter allow: %w", err)
	}
	// PTTL is negative when the key does not exist or has no expiry.
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, ttl, nil
}

// Success clears the counter and any block.
func (l *Redis) Success(ctx context.Context, username string, ipHash []byte) error {
	if err := l.rdb.Del(ctx, l.failKey(username, ipHash), l.blockKey(username, ipHash)).Err(); err != nil {
		return fmt.Errorf("limiter success: %w", err)
	}
	return nil
}

// Failure increments the counter and sets a block once maxFails is reached.
func (l *Redis) Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error) {
	key := l.failKey(username, ipHash)
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("limiter failure: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("limiter failure: %w", err)
		}
	}
	if count < int64(l.maxFails) {
		return false, 0, nil
	}

	pipe := l.rdb.TxPipeline()
	pipe.Set(ctx, l.blockKey(username, ipHash), count, l.blockFor)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, fmt.Errorf("limiter block: %w", err)
	}
	return true, l.blockFor, nil
}
