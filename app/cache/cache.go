package cache

import (
	"time"

	"go.uber.org/zap"
)

// Home feed cache settings. The entry is only ever invalidated by
// expiry: a freshly published post can take up to the TTL to show up
// on the home page, which is accepted behavior.
const (
	HomeLatestKey   = "home:latest_posts"
	HomeLatestTTL   = 900 * time.Second
	HomeLatestCount = 3
)

// Store is a process-wide key-value cache with per-entry TTL.
//
// Implementations never surface errors: a failed read presents as a
// miss and a failed write is dropped (and logged), so callers always
// fall back to live computation. The cache is a pure performance
// optimization, never a correctness-bearing store.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// New returns a Redis-backed store when the server at addr is
// reachable, and falls back to the in-memory store otherwise.
func New(addr string, logger *zap.SugaredLogger) Store {
	store, err := NewRedis(addr, logger)
	if err != nil {
		if logger != nil {
			logger.Warnw("Redis unavailable; using in-memory cache", "addr", addr, "error", err)
		}
		return NewMemory()
	}
	return store
}
