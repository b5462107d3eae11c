package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
)

type redisStorage struct {
	client *redis.Client
}

// NewRedis stores each cart as a JSON array under its key. No TTL: the
// slot is a durable mirror, not a cache.
func NewRedis(client *redis.Client) (port.CartStorage, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	return &redisStorage{client: client}, nil
}

func (s *redisStorage) Save(ctx context.Context, key string, items []domain.CartItem) error {
	if key == "" {
		return fmt.Errorf("cart key is empty")
	}

	data, err := marshalItems(items)
	if err != nil {
		return fmt.Errorf("marshalItems: %w", err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}
	return nil
}

func (s *redisStorage) Load(ctx context.Context, key string) ([]domain.CartItem, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("cart key is empty")
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("client.Get: %w", err)
	}

	items, err := unmarshalItems(data)
	if err != nil {
		// malformed record, treat as "no cart"
		return nil, false, nil
	}
	if len(items) == 0 {
		return nil, false, nil
	}
	return items, true, nil
}

func (s *redisStorage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("cart key is empty")
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}
	return nil
}
