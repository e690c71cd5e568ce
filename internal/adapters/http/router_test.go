package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/go-item-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-item-service/internal/app"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/messages"
	"github.com/jsamuelsen11/go-item-service/mocks"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockHealthRegistry) {
	t.Helper()

	catalog, err := messages.NewCatalog("en")
	require.NoError(t, err)

	svc := app.NewItemService(memory.New(), nil, nil)
	registry := mocks.NewMockHealthRegistry(t)

	ih := handlers.NewItemHandler(svc, catalog, 0)
	hh := handlers.NewHealthHandler(registry)

	return adapthttp.NewRouter(ih, hh, middlewares...), registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	chiRouter, ok := router.(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, route := range []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /validation/v2/items/",
		"GET /validation/v2/items/add",
		"POST /validation/v2/items/add",
		"GET /validation/v2/items/{itemId}",
		"GET /validation/v2/items/{itemId}/edit",
		"POST /validation/v2/items/{itemId}/edit",
	} {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, registry := newTestRouter(t, testMW)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called, "middleware was not called")
}

func TestRouter_AddThenView(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	form := url.Values{"itemName": {"Book"}, "price": {"10000"}, "quantity": {"10"}}
	req := httptest.NewRequest(http.MethodPost, "/validation/v2/items/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	location := rec.Header().Get("Location")
	assert.Equal(t, "/validation/v2/items/1?status=true", location)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, location, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"item":{"id":1,"itemName":"Book","price":10000,"quantity":10},"status":true}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation/v2/items", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestRouter_AddIsNotAnItemID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation/v2/items/add", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"`+item.FieldItemName+`":""`)
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	tests := []string{"/nonexistent", "/validation/v2/items/99"}
	for _, path := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/validation/v2/items/add", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
