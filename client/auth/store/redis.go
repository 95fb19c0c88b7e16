package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares one session between processes, keys live under Prefix.
type RedisStore struct {
	RDB    *redis.Client
	Prefix string
}

func (r *RedisStore) key(key Key) string {
	return r.Prefix + string(key)
}

func (r *RedisStore) Lookup(ctx context.Context, key Key) (string, bool, error) {
	value, err := r.RDB.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup %v: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisStore) Put(ctx context.Context, key Key, value string) error {
	return r.RDB.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisStore) Remove(ctx context.Context, key Key) error {
	return r.RDB.Del(ctx, r.key(key)).Err()
}

// NewRedisStore creates a redis backed store, prefix defaults to "policyadmin:session:".
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "policyadmin:session:"
	}
	return &RedisStore{RDB: rdb, Prefix: prefix}
}

// Close closes the underlying redis client
func (r *RedisStore) Close() error {
	return r.RDB.Close()
}
