package store

import (
	"context"
	"sync"

	"github.com/vbonduro/pantrychef/internal/domain"
)

// MemoryStore keeps the pantry in an ordered slice guarded by a RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	items []domain.PantryItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make([]domain.PantryItem, 0)}
}

func (s *MemoryStore) List(_ context.Context) ([]domain.PantryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PantryItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Add(_ context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return item, nil
}

func (s *MemoryStore) Update(_ context.Context, name string, item domain.PantryItem) (domain.PantryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i] = item
			return item, nil
		}
	}
	return domain.PantryItem{}, ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	// Zero the tail so removed items are not retained by the backing array.
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = domain.PantryItem{}
	}
	s.items = kept
	return nil
}
