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

	// static routes, no state behind them
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/api/health", h.health)
	})

	return router
}
