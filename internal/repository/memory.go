package repository

import (
	"context"
	"fmt"

	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
)

type memoryStorage struct {
	slots map[string][]byte
}

// NewMemory keeps serialized carts in a process-local map. It backs
// anonymous sessions and tests; it goes through the same JSON records as
// the redis adapter so round-trips exercise the real wire shape.
func NewMemory() port.CartStorage {
	return &memoryStorage{slots: make(map[string][]byte)}
}

func (s *memoryStorage) Save(_ context.Context, key string, items []domain.CartItem) error {
	if key == "" {
		return fmt.Errorf("cart key is empty")
	}

	data, err := marshalItems(items)
	if err != nil {
		return fmt.Errorf("marshalItems: %w", err)
	}

	s.slots[key] = data
	return nil
}

func (s *memoryStorage) Load(_ context.Context, key string) ([]domain.CartItem, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("cart key is empty")
	}

	data, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}

	items, err := unmarshalItems(data)
	if err != nil {
		return nil, false, nil
	}
	if len(items) == 0 {
		return nil, false, nil
	}
	return items, true, nil
}

func (s *memoryStorage) Remove(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("cart key is empty")
	}

	delete(s.slots, key)
	return nil
}
