package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer builds the listener from the serving settings. The handler
// is wrapped in a throttle capping in-flight requests at the configured
// worker capacity: requests beyond the cap wait in a backlog of the same
// size and are rejected once the request timeout passes.
func newHTTPServer(handler http.Handler, cfg *config.Server, logger *logger.Logger) *httpServer {
	capacity := cfg.MaxConcurrency()
	throttled := middleware.ThrottleBacklog(capacity, capacity, cfg.RequestTimeout())(handler)

	return &httpServer{
		server: &http.Server{
			Addr:         cfg.Address(),
			Handler:      throttled,
			ReadTimeout:  cfg.RequestTimeout(),
			WriteTimeout: cfg.RequestTimeout(),
			IdleTimeout:  cfg.KeepAliveTimeout(),
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
