package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/newtab/internal/store"
)

// Store is a store.KV backed by Redis string keys.
// Values never expire; the homepage state lives until overwritten.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Get returns the raw value stored under name.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	v, err := s.client.Get(ctx, Key(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", name, err)
	}
	return v, nil
}

// Set overwrites the value stored under name.
func (s *Store) Set(ctx context.Context, name, value string) error {
	if err := s.client.Set(ctx, Key(name), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
