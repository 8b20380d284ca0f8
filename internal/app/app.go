// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	myHTTP "github.com/MKhiriev/go-web-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

// App aggregates the resolved configuration and the registered routes into
// one ready-to-serve application object. It is created once per process and
// not mutated after construction.
type App struct {
	// Config is the configuration the application was constructed with.
	Config *config.Config

	router *chi.Mux
	logger *logger.Logger
}

// New is the application factory.
//
// profileName selects an optional variant profile; the empty string means
// "no variant" and relies on the environment-derived base configuration
// alone. The machine-local override file is probed under
// [config.DefaultInstanceDir], relative to the working directory. Any
// configuration failure aborts construction; the process should not start.
func New(profileName string, log *logger.Logger) (*App, error) {
	cfg, err := config.Resolve(profileName, config.DefaultInstanceDir)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	a := &App{
		Config: cfg,
		logger: log,
	}
	a.registerRoutes()

	log.Info().
		Bool("debug", cfg.Debug).
		Bool("testing", cfg.Testing).
		Msg("application created")

	return a, nil
}

// registerRoutes attaches the route registry. Kept separate from New so the
// construction sequence reads in configuration-then-routes order.
func (a *App) registerRoutes() {
	a.router = myHTTP.NewHandler(a.Config, a.logger).Init()
}

// ServeHTTP lets the application be mounted on any server as a plain
// [http.Handler].
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

var _ http.Handler = (*App)(nil)
