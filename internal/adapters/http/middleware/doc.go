// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs the chain in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → chi Timeout → Handler
//
// Response status and size are captured with chi's WrapResponseWriter.
package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// wrap returns w as a chi WrapResponseWriter, reusing it when an outer
// middleware already wrapped it.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status written through ww, treating a handler that
// wrote nothing as 200 OK.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
