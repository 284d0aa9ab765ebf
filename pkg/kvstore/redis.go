package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zarnosh/My-E-comerce-Store/pkg/redis"
)

// RedisClient is the subset of *redis.Client the store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	ScopedKey(scope, key string) string
}

// Redis stores values under luxe:<scope>:<key>. A positive ttl makes every
// write expire, which is how the session scope ends with the browser session.
type Redis struct {
	client RedisClient
	scope  Scope
	ttl    time.Duration
}

func NewRedis(client RedisClient, scope Scope, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if scope == "" {
		return nil, errors.New("scope is required")
	}
	return &Redis{client: client, scope: scope, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.client.ScopedKey(string(r.scope), key))
	if errors.Is(err, redis.ErrNil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return []byte(v), nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.client.ScopedKey(string(r.scope), key), string(value), r.ttl); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.client.ScopedKey(string(r.scope), key)); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
