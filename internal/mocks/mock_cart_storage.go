package mocks

import (
	"context"
	"sync"

	"github.com/greenbasket/checkout/internal/domain"
)

// MemoryCartStorage is an in-memory cart.Storage for tests. LoadErr and
// SaveErr, when set, are returned instead of touching the map.
type MemoryCartStorage struct {
	mu      sync.Mutex
	carts   map[string][]domain.CartItem
	LoadErr error
	SaveErr error
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{
		carts: make(map[string][]domain.CartItem),
	}
}

func (s *MemoryCartStorage) Load(ctx context.Context, key string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}

	return s.carts[key], nil
}

func (s *MemoryCartStorage) Save(ctx context.Context, key string, items []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}

	s.carts[key] = items
	return nil
}

// Seed stores items under key, bypassing the error hooks.
func (s *MemoryCartStorage) Seed(key string, items []domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[key] = items
}
