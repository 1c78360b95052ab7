package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis is a Store backed by a Redis server. All errors are logged and
// swallowed: reads degrade to misses, writes are dropped.
type Redis struct {
	client *redis.Client
	logger *zap.SugaredLogger
}

// NewRedis connects to the Redis server at addr. It fails when the
// server does not answer a ping within two seconds.
func NewRedis(addr string, logger *zap.SugaredLogger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Redis{client: client, logger: logger}, nil
}

// Get returns the value for key, treating every Redis failure as a miss.
func (r *Redis) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && r.logger != nil {
			r.logger.Errorw("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

// Set stores value under key for ttl. Failures are logged, never returned.
func (r *Redis) Set(key string, value []byte, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil && r.logger != nil {
		r.logger.Errorw("cache set failed", "key", key, "error", err)
	}
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
