package storage

import (
	"context"
	"sync"

	"taam-menu/internal/domain"
)

// MemoryCartStore keeps carts in process memory. The default for single
// replica deployments; carts do not survive a restart.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]domain.Cart)}
}

func (s *MemoryCartStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return domain.Cart{}, nil
	}
	// Copy the lines so callers can mutate without holding the lock.
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return domain.Cart{Items: items}, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
