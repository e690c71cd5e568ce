package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/messages"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testCatalog(t *testing.T) *messages.Catalog {
	t.Helper()
	catalog, err := messages.NewCatalog("en")
	require.NoError(t, err)
	return catalog
}

func storedItem(id int64, name string, price, quantity int64) *item.Item {
	it := item.New(name, price, quantity)
	it.ID = id
	return it
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result), "decoding JSON response")
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}
