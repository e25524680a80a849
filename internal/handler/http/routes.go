package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withRateLimit)

	router.Get("/health", h.health)
	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/features/", h.getFeatures)
	router.Get("/api/features/{name}", h.getFeature)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
