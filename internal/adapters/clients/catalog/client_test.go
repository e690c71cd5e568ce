package catalog_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/clients/catalog"
	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/config"
	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
)

func newStore(t *testing.T, h http.HandlerFunc) *catalog.Store {
	t.Helper()
	return newRetryingStore(t, 1, h)
}

func newRetryingStore(t *testing.T, attempts int, h http.HandlerFunc) *catalog.Store {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.ClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     attempts,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}
	logger := slog.New(slog.DiscardHandler)
	return catalog.New(httpclient.New(cfg, catalog.PeerName, nil, logger), logger)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestStore_FindAll(t *testing.T) {
	t.Parallel()

	s := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/items", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"items": []map[string]any{
				{"id": 1, "item_name": "itemA", "price": 10000, "quantity": 10},
				{"id": 2, "item_name": "itemB", "price": nil, "quantity": 20},
			},
		})
	})

	items, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, *item.New("itemA", 10000, 10), withoutID(items[0]))
	assert.Equal(t, int64(2), items[1].ID)
	assert.Nil(t, items[1].Price)
}

func withoutID(it item.Item) item.Item {
	it.ID = 0
	return it
}

func TestStore_FindByID(t *testing.T) {
	t.Parallel()

	s := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/items/7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "item_name": "itemA", "price": 10000, "quantity": 10})
	})

	it, err := s.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), it.ID)
	assert.Equal(t, "itemA", *it.ItemName)
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	s := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Book", body["item_name"])
		assert.Contains(t, body, "quantity")
		assert.Nil(t, body["quantity"])
		assert.NotContains(t, body, "id")

		body["id"] = 11
		writeJSON(t, w, http.StatusCreated, body)
	})

	in := item.New("Book", 1000, 0)
	in.Quantity = nil

	saved, err := s.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)
	assert.Equal(t, int64(1000), *saved.Price)
}

func TestStore_SaveIsNotRetried(t *testing.T) {
	t.Parallel()

	var posts atomic.Int32
	s := newRetryingStore(t, 3, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if posts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": 2, "item_name": "Book"})
	})

	saved, err := s.Save(context.Background(), item.New("Book", 1000, 10))

	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Nil(t, saved)
	assert.Equal(t, int32(1), posts.Load())
}

func TestStore_UpdateIsRetried(t *testing.T) {
	t.Parallel()

	var puts atomic.Int32
	s := newRetryingStore(t, 3, func(w http.ResponseWriter, _ *http.Request) {
		if puts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, s.Update(context.Background(), 3, item.New("x", 1, 2)))
	assert.Equal(t, int32(2), puts.Load())
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	s := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/items/3", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"item_name":"x","price":1,"quantity":2}`, string(b))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, s.Update(context.Background(), 3, item.New("x", 1, 2)))
}

func TestStore_ErrorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: domain.ErrNotFound},
		{name: "conflict", status: http.StatusConflict, want: domain.ErrConflict},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: domain.ErrValidation},
		{name: "forbidden", status: http.StatusForbidden, want: domain.ErrUnavailable},
		{name: "server error", status: http.StatusInternalServerError, want: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newStore(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"item 5 is gone"}`))
			})

			_, err := s.FindByID(context.Background(), 5)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, "item 5 is gone")
		})
	}
}

func TestStore_UnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := &config.ClientConfig{
		BaseURL:        url,
		Timeout:        time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second},
	}
	s := catalog.New(httpclient.New(cfg, catalog.PeerName, nil, nil), nil)

	_, err := s.FindAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestStore_Health(t *testing.T) {
	t.Parallel()

	s := newStore(t, func(http.ResponseWriter, *http.Request) {})
	assert.Equal(t, "catalog-api", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))
}
