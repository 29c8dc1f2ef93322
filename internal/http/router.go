package http

import (
	"net/http"

	"log-reader/internal/shared/loggers"
	"log-reader/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the router of the status server.
func NewRouter(progressSource ProgressSource, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler()))
	router.Get("/progress", errorHandlingAdapter(NewProgressHandler(progressSource)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
