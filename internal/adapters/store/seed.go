// Package store holds helpers shared by the item store adapters.
package store

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

// SampleItems are inserted by Seed.
func SampleItems() []*item.Item {
	return []*item.Item{
		item.New("itemA", 10000, 10),
		item.New("itemB", 20000, 20),
	}
}

// Seed inserts SampleItems when s holds no items and reports how many were
// added.
func Seed(ctx context.Context, s ports.ItemStore) (int, error) {
	existing, err := s.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking for existing items: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	samples := SampleItems()
	for _, it := range samples {
		if _, err := s.Save(ctx, it); err != nil {
			return 0, fmt.Errorf("seeding %s: %w", *it.ItemName, err)
		}
	}
	return len(samples), nil
}
