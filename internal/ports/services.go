package ports

import (
	"context"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
)

// ItemService defines the service port for the item views and form
// submissions. Implemented by the application layer; called by inbound
// adapters.
type ItemService interface {
	// ListItems returns all items.
	ListItems(ctx context.Context) ([]item.Item, error)

	// GetItem returns a single item by ID.
	// Returns domain.ErrNotFound if the item does not exist.
	GetItem(ctx context.Context, id int64) (*item.Item, error)

	// NewItemForm returns the empty candidate shown by the add form.
	NewItemForm() *item.Item

	// HandleAdd validates a submitted item. Validation failures are not
	// errors: they produce a Redisplay outcome. A valid item is saved and
	// produces a Committed outcome. Only store failures return an error.
	HandleAdd(ctx context.Context, sub Submission) (Outcome, error)

	// HandleEdit stores the submitted values for an existing item. No
	// validation is performed.
	// Returns domain.ErrNotFound if the item does not exist.
	HandleEdit(ctx context.Context, id int64, candidate *item.Item) error

	// ValidateItem runs the item rules without storing anything.
	ValidateItem(candidate *item.Item) *validation.Report
}

// Submission is a candidate item decoded from a form, together with the
// text as submitted and the report holding any binding failures.
type Submission struct {
	Item *item.Item
	// Raw is the submitted text keyed by field name, echoed back on
	// redisplay so the user sees exactly what they typed.
	Raw map[string]string
	// Binding holds binding failures recorded while decoding Raw. A nil
	// report is treated as empty.
	Binding *validation.Report
}

// Outcome is the result of HandleAdd: either *Redisplay or *Committed.
type Outcome interface {
	outcome()
}

// Redisplay means the form must be shown again with its errors.
type Redisplay struct {
	Item   *item.Item
	Raw    map[string]string
	Report *validation.Report
}

// Committed means the item passed validation and was stored.
type Committed struct {
	ID int64
	// Status is passed to the detail view to confirm the save.
	Status bool
}

func (*Redisplay) outcome() {}
func (*Committed) outcome() {}
