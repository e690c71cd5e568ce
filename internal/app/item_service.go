// Package app holds the application services behind the inbound adapters.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
	"github.com/jsamuelsen11/go-item-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

var _ ports.ItemService = (*ItemService)(nil)

// ItemService implements ports.ItemService on top of an item store. It owns
// the add-form decision: redisplay with errors or save and redirect.
type ItemService struct {
	store     ports.ItemStore
	validator item.Validator
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewItemService creates an ItemService. metrics may be nil; a nil logger
// discards output.
func NewItemService(store ports.ItemStore, metrics *telemetry.Metrics, logger *slog.Logger) *ItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ItemService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// ListItems returns every stored item.
func (s *ItemService) ListItems(ctx context.Context) ([]item.Item, error) {
	items, err := s.store.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list items",
			slog.String("operation", "ListItems"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return items, nil
}

// GetItem returns the item with id or an error wrapping domain.ErrNotFound.
func (s *ItemService) GetItem(ctx context.Context, id int64) (*item.Item, error) {
	it, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch item",
			slog.String("operation", "GetItem"),
			slog.Int64("item_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return it, nil
}

// NewItemForm returns an empty candidate.
func (s *ItemService) NewItemForm() *item.Item {
	return &item.Item{}
}

// HandleAdd validates sub and either asks for a redisplay or saves the item.
// Validation problems never surface as errors.
func (s *ItemService) HandleAdd(ctx context.Context, sub ports.Submission) (ports.Outcome, error) {
	candidate := sub.Item
	if candidate == nil {
		candidate = &item.Item{}
	}
	report := sub.Binding
	if report == nil {
		report = validation.NewReport(item.ObjectName, candidate)
	}

	s.validator.ValidateInto(candidate, report)

	if report.HasErrors() {
		raw := sub.Raw
		if raw == nil {
			raw = candidate.FormValues()
		}
		s.logger.InfoContext(ctx, "redisplaying item form",
			slog.String("operation", "HandleAdd"),
			slog.String("object", report.ObjectName()),
			slog.Any("target", raw),
			slog.Any("report", report),
		)
		s.metrics.RecordSubmission(ctx, item.ObjectName, telemetry.ResultRedisplay, report.ErrorCount())
		return &ports.Redisplay{Item: candidate, Raw: raw, Report: report}, nil
	}

	saved, err := s.store.Save(ctx, candidate.Clone())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save item",
			slog.String("operation", "HandleAdd"),
			slog.Any("error", err),
		)
		s.metrics.RecordSubmission(ctx, item.ObjectName, telemetry.ResultError, 0)
		return nil, fmt.Errorf("saving item: %w", err)
	}

	s.logger.InfoContext(ctx, "item saved",
		slog.String("operation", "HandleAdd"),
		slog.Int64("item_id", saved.ID),
	)
	s.metrics.RecordSubmission(ctx, item.ObjectName, telemetry.ResultCommitted, 0)
	return &ports.Committed{ID: saved.ID, Status: true}, nil
}

// HandleEdit overwrites the item with id. The edit form is not validated.
func (s *ItemService) HandleEdit(ctx context.Context, id int64, candidate *item.Item) error {
	if candidate == nil {
		candidate = &item.Item{}
	}

	if err := s.store.Update(ctx, id, candidate.Clone()); err != nil {
		s.logger.ErrorContext(ctx, "failed to update item",
			slog.String("operation", "HandleEdit"),
			slog.Int64("item_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "item updated",
		slog.String("operation", "HandleEdit"),
		slog.Int64("item_id", id),
	)
	return nil
}

// ValidateItem runs the item rules without touching the store.
func (s *ItemService) ValidateItem(candidate *item.Item) *validation.Report {
	return s.validator.Validate(candidate)
}
