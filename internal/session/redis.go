package session

import (
	"context" // Context for Redis operations
	"errors"  // Error matching
	"time"    // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Redis stores the record as a plain Redis string
type Redis struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Expiry of the record, 0 keeps it forever
}

// NewRedis creates a Redis backend
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// Get retrieves the raw record from Redis
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return nil, false, nil // Key does not exist
	} else if err != nil {
		return nil, false, err // Other Redis error
	}
	return val, true, nil
}

// Set writes the record with the configured TTL
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, r.ttl).Err() // Set value in Redis with TTL
}

// Delete deletes the record from Redis
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err() // Delete key from Redis
}
