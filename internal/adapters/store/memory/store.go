// Package memory is an in-process item store for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

var _ ports.ItemStore = (*Store)(nil)

// Store keeps items in a map keyed by ID. IDs start at 1 and are never
// reused. Callers get copies, so mutating a returned item does not change
// the store.
type Store struct {
	mu    sync.RWMutex
	items map[int64]*item.Item
	seq   int64
}

// New returns an empty store.
func New() *Store {
	return &Store{items: make(map[int64]*item.Item)}
}

// FindAll returns every item ordered by ID.
func (s *Store) FindAll(_ context.Context) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]item.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindByID returns the item or an error wrapping domain.ErrNotFound.
func (s *Store) FindByID(_ context.Context, id int64) (*item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return it.Clone(), nil
}

// Save assigns the next ID and stores a copy of it.
func (s *Store) Save(_ context.Context, it *item.Item) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	stored := it.Clone()
	if stored == nil {
		stored = &item.Item{}
	}
	stored.ID = s.seq
	s.items[stored.ID] = stored
	return stored.Clone(), nil
}

// Update replaces the fields of an existing item, keeping its ID.
func (s *Store) Update(_ context.Context, id int64, it *item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	stored := it.Clone()
	if stored == nil {
		stored = &item.Item{}
	}
	stored.ID = id
	s.items[id] = stored
	return nil
}

// Len reports how many items are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker. An in-process store is always
// available.
func (s *Store) HealthCheck(context.Context) error { return nil }
