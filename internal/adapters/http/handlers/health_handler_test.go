package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-service/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "ok", resp["status"])
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]any
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"database": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]any{"database": "ok"},
		},
		{
			name: "one unhealthy",
			results: map[string]error{
				"catalog-api": errors.New("circuit breaker open"),
				"database":    nil,
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]any{"catalog-api": "circuit breaker open", "database": "ok"},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			h.Readiness(rec, req)

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[map[string]any](t, rec)
			assert.Equal(t, tt.wantStatus, resp["status"])
			assert.Equal(t, tt.wantChecks, resp["checks"])
		})
	}
}
