package ports

import (
	"context"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
)

// ItemStore holds items keyed by ID. Implementations must be safe for
// concurrent use; each method is treated as atomic by callers. Stores do
// not validate: items are stored as given.
type ItemStore interface {
	// FindAll returns every stored item ordered by ID.
	FindAll(ctx context.Context) ([]item.Item, error)

	// FindByID returns the item with the given ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	FindByID(ctx context.Context, id int64) (*item.Item, error)

	// Save stores a new item, assigns it an ID and returns the stored copy.
	// Any ID already set on the argument is ignored.
	Save(ctx context.Context, it *item.Item) (*item.Item, error)

	// Update replaces the name, price and quantity of the item with the
	// given ID. Returns domain.ErrNotFound if the ID is unknown.
	Update(ctx context.Context, id int64, it *item.Item) error
}
