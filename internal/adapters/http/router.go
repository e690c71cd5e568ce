// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	itemHandler *handlers.ItemHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route(handlers.BasePath, func(r chi.Router) {
		r.Get("/", itemHandler.ListItems)

		// Static segments take precedence over {itemId}.
		r.Get("/add", itemHandler.AddForm)
		r.Post("/add", itemHandler.AddItem)

		r.Get("/{itemId}", itemHandler.GetItem)
		r.Get("/{itemId}/edit", itemHandler.EditForm)
		r.Post("/{itemId}/edit", itemHandler.EditItem)
	})

	return r
}
