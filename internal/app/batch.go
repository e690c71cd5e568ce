package app

import (
	"context"

	"github.com/jsamuelsen11/go-item-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
)

// DefaultBatchWorkers bounds ValidateForms when the caller passes zero.
const DefaultBatchWorkers = 4

// ValidateForms binds and validates each raw form, running at most workers at
// a time. Reports come back in input order. The only error is cancellation.
func ValidateForms(ctx context.Context, workers int, forms []map[string]string) ([]*validation.Report, error) {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	results := fanout.Run(ctx, workers, forms, func(_ context.Context, raw map[string]string) (*validation.Report, error) {
		candidate, report := item.Bind(raw)
		item.Validator{}.ValidateInto(candidate, report)
		return report, nil
	})
	return fanout.Values(results)
}
