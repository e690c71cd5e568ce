package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
)

// errInternalServer is returned to clients when a panic is recovered. The
// panic value and stack trace are only logged.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream
// handlers. The panic is logged with its stack and answered with an RFC 9457
// 500 response unless the handler already started writing.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrap(w, r)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", httpclient.RequestID(r.Context())),
				)

				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errInternalServer)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
