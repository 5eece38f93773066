// This file implements the Redis backend.
package slot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// redisKeyPrefix namespaces slot keys on a shared server.
const redisKeyPrefix = "recipebox:"

// redisConnectMaxElapsed bounds how long OpenRedis waits for the server.
const redisConnectMaxElapsed = 10 * time.Second

// RedisOptions configures OpenRedis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// MaxElapsed overrides redisConnectMaxElapsed when positive.
	MaxElapsed time.Duration
}

// Redis stores every key as a Redis string under redisKeyPrefix.
type Redis struct {
	mu     sync.RWMutex
	client *redis.Client
}

func newConnectBackoff(maxElapsed time.Duration) backoff.BackOff {
	// BackOff implementations are stateful; always return a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = redisConnectMaxElapsed
	if maxElapsed > 0 {
		bo.MaxElapsedTime = maxElapsed
	}
	return bo
}

// OpenRedis connects to the server at opts.Addr and verifies it answers
// PING, retrying with exponential backoff until opts.MaxElapsed.
func OpenRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	bo := backoff.WithContext(newConnectBackoff(opts.MaxElapsed), ctx)
	err := backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, bo)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}
	return &Redis{client: client}, nil
}

// Get reads the Redis string for key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.client == nil {
		return nil, types.ErrSlotClosed
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}

	value, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, types.ErrSlotEmpty
		}
		return nil, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return value, nil
}

// Put sets the Redis string for key with no expiry.
func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.client == nil {
		return types.ErrSlotClosed
	}
	if key == "" {
		return types.ErrInvalidKey
	}

	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}

// Remove deletes the Redis key. Removing a missing key succeeds.
func (r *Redis) Remove(ctx context.Context, key string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.client == nil {
		return types.ErrSlotClosed
	}
	if key == "" {
		return types.ErrInvalidKey
	}

	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("removing slot %s: %w", key, err)
	}
	return nil
}

// Close closes the client connection pool. Idempotent.
func (r *Redis) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == nil {
		return nil
	}
	err := r.client.Close()
	r.client = nil
	return err
}
