package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
)

// headerCorrelationID is accepted as the request ID when X-Request-ID is
// missing.
const headerCorrelationID = "X-Correlation-ID"

// maxRequestIDLen bounds client supplied IDs before they reach logs and
// outbound headers.
const maxRequestIDLen = 128

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	return httpclient.RequestID(ctx)
}

// RequestID returns middleware that assigns every request an ID. An incoming
// X-Request-ID (or X-Correlation-ID) header is reused; otherwise a UUID v4 is
// generated. The ID is echoed in the response header and stored with
// httpclient.WithRequestID so calls to the remote catalog carry it.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := incomingID(r)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(httpclient.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(httpclient.WithRequestID(r.Context(), id)))
		})
	}
}

func incomingID(r *http.Request) string {
	for _, header := range []string{httpclient.HeaderRequestID, headerCorrelationID} {
		if id := r.Header.Get(header); id != "" && len(id) <= maxRequestIDLen {
			return id
		}
	}
	return ""
}
