package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/methods", h.methods)

	router.Post("/api/transform", h.transform)
	router.Post("/api/strength", h.strength)

	router.Get("/api/history", h.history)
	router.Delete("/api/history", h.clearHistory)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
