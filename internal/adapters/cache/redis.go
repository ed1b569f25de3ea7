package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ndprime:first:"

// RedisStore shares results between daemon instances. Values are stored as
// decimal strings.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps client. A zero ttl stores keys without expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(digits int) string {
	return keyPrefix + strconv.Itoa(digits)
}

func (s *RedisStore) Get(ctx context.Context, digits int) (uint64, bool, error) {
	raw, err := s.client.Get(ctx, key(digits)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get %s: %w", key(digits), err)
	}
	p, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cache entry %s=%q: %w", key(digits), raw, err)
	}
	return p, true, nil
}

func (s *RedisStore) Set(ctx context.Context, digits int, prime uint64) error {
	v := strconv.FormatUint(prime, 10)
	if err := s.client.Set(ctx, key(digits), v, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key(digits), err)
	}
	return nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
