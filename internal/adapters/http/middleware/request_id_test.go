package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
)

func serveRequestID(t *testing.T, headers map[string]string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var gotID string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.RequestIDFromContext(r.Context())
		assert.Equal(t, gotID, httpclient.RequestID(r.Context()), "outbound calls must see the same ID")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return gotID, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	gotID, rec := serveRequestID(t, nil)

	parsed, err := uuid.Parse(gotID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, gotID, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_IncomingHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "request id",
			headers: map[string]string{"X-Request-ID": "incoming-123"},
			want:    "incoming-123",
		},
		{
			name:    "correlation id fallback",
			headers: map[string]string{"X-Correlation-ID": "corr-456"},
			want:    "corr-456",
		},
		{
			name:    "request id wins",
			headers: map[string]string{"X-Request-ID": "req", "X-Correlation-ID": "corr"},
			want:    "req",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotID, rec := serveRequestID(t, tt.headers)
			assert.Equal(t, tt.want, gotID)
			assert.Equal(t, tt.want, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequestID_OversizedHeaderReplaced(t *testing.T) {
	t.Parallel()

	gotID, _ := serveRequestID(t, map[string]string{"X-Request-ID": strings.Repeat("a", 500)})

	_, err := uuid.Parse(gotID)
	assert.NoError(t, err)
}
