package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion. It
// stores a child logger carrying the request ID in the context for handlers
// and services to use via logging.FromContext.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(slog.String("request_id", RequestIDFromContext(r.Context())))
			ctx := logging.WithLogger(r.Context(), child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", redactHeaders(r.Header)...)
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", statusOf(ww)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// redactHeaders renders headers as log attributes, masking the ones listed
// in logging.SensitiveHeaders.
func redactHeaders(headers http.Header) []any {
	attrs := make([]any, 0, len(headers))
	for key, vals := range headers {
		value := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
