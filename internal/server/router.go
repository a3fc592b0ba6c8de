package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/handlers"
	"keypad-calc/internal/observability"
	"keypad-calc/internal/session"
)

func NewRouter(sessions *session.Store) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r)
	session.RegisterRoutes(r, session.NewHandler(sessions))

	return r
}
