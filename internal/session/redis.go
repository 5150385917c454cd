package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds Store keeping msgpack-encoded form state in redis
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (r *redisStore) Load(ctx context.Context, id string) (FormState, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return FormState{}, nil
		}
		return FormState{}, fmt.Errorf("failed to load form state - %w", err)
	}

	var state FormState
	if err := msgpack.Unmarshal(res, &state); err != nil {
		return FormState{}, fmt.Errorf("failed to decode form state - %w", err)
	}
	return state, nil
}

func (r *redisStore) Save(ctx context.Context, id string, state FormState) error {
	encoded, err := msgpack.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to encode form state - %w", err)
	}

	if err := r.client.Set(ctx, r.key(id), encoded, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save form state - %w", err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete form state - %w", err)
	}
	return nil
}

func (r *redisStore) key(id string) string {
	return fmt.Sprintf("search-session:%s", id)
}
