// Package catalog stores items in a remote catalog API. Each call goes through
// httpclient, so it inherits retries, the circuit breaker and tracing.
package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

// PeerName identifies the catalog API in health results and telemetry.
const PeerName = "catalog-api"

const itemsPath = "/api/v1/items"

var _ ports.ItemStore = (*Store)(nil)

// Store implements ports.ItemStore against the catalog API.
type Store struct {
	req    *requester
	client *httpclient.Client
}

// New returns a Store sending requests through client.
func New(client *httpclient.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		req:    &requester{client: client, logger: logger},
		client: client,
	}
}

// FindAll fetches GET /api/v1/items.
func (s *Store) FindAll(ctx context.Context) ([]item.Item, error) {
	var list itemListDTO
	if err := s.req.do(ctx, http.MethodGet, itemsPath, http.StatusOK, nil, &list); err != nil {
		return nil, err
	}

	out := make([]item.Item, 0, len(list.Items))
	for _, d := range list.Items {
		out = append(out, *d.toItem())
	}
	return out, nil
}

// FindByID fetches GET /api/v1/items/{id}.
func (s *Store) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	var d itemDTO
	if err := s.req.do(ctx, http.MethodGet, itemPath(id), http.StatusOK, nil, &d); err != nil {
		return nil, err
	}
	return d.toItem(), nil
}

// Save posts the item once; the catalog assigns the ID. A 5xx answer is not
// retried and surfaces as domain.ErrUnavailable.
func (s *Store) Save(ctx context.Context, it *item.Item) (*item.Item, error) {
	var created itemDTO
	if err := s.req.do(ctx, http.MethodPost, itemsPath, http.StatusCreated, fromItem(it), &created); err != nil {
		return nil, err
	}
	return created.toItem(), nil
}

// Update replaces the item with PUT /api/v1/items/{id}.
func (s *Store) Update(ctx context.Context, id int64, it *item.Item) error {
	return s.req.do(ctx, http.MethodPut, itemPath(id), http.StatusNoContent, fromItem(it), nil)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return PeerName }

// HealthCheck reports the catalog's state from the circuit breaker without a
// network call.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

func itemPath(id int64) string {
	return itemsPath + "/" + strconv.FormatInt(id, 10)
}
