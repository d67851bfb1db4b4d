package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists carts in redis. The TTL stands in for browser storage
// eviction: an untouched cart expires instead of living forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(c context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(c, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Set(c context.Context, key string, value []byte) error {
	return s.client.Set(c, key, value, s.ttl).Err()
}

func (s *RedisStore) Delete(c context.Context, key string) error {
	return s.client.Del(c, key).Err()
}
