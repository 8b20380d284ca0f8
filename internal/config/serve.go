// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
)

// Worker classes accepted by [GetServerConfig]. They mirror the process
// manager convention the settings are named after: "sync" handles one
// request per worker slot, "gthread" multiplies the slots by the thread
// count.
const (
	WorkerClassSync    = "sync"
	WorkerClassGThread = "gthread"
)

// Server holds the production serving-layer settings. All tuning happens
// through environment variables; the names and defaults follow the
// conventional process-manager configuration so existing deployment recipes
// keep working unchanged.
type Server struct {
	// Port, when set by the platform (e.g. a PaaS), forces the listen
	// address to 0.0.0.0:<Port> regardless of Bind.
	// Env: PORT
	Port string `env:"PORT"`

	// Bind is the listen address used when Port is unset.
	// Env: GUNICORN_BIND
	Bind string `env:"GUNICORN_BIND" envDefault:"127.0.0.1:8000"`

	// Workers is the worker-slot count. Zero or negative means "derive
	// from the machine": 2×CPU+1, the usual formula for sync workers.
	// Env: GUNICORN_WORKERS
	Workers int `env:"GUNICORN_WORKERS" envDefault:"0"`

	// Threads is the thread count per worker slot; only meaningful for
	// the gthread worker class.
	// Env: GUNICORN_THREADS
	Threads int `env:"GUNICORN_THREADS" envDefault:"1"`

	// Timeout is the per-request budget, in whole seconds.
	// Env: GUNICORN_TIMEOUT
	Timeout int `env:"GUNICORN_TIMEOUT" envDefault:"30"`

	// KeepAlive is how long an idle connection is kept open, in whole
	// seconds.
	// Env: GUNICORN_KEEPALIVE
	KeepAlive int `env:"GUNICORN_KEEPALIVE" envDefault:"2"`

	// LogLevel is the serving log level name ("debug", "info", "warning",
	// "error", "critical").
	// Env: GUNICORN_LOGLEVEL
	LogLevel string `env:"GUNICORN_LOGLEVEL" envDefault:"info"`

	// WorkerClass selects the concurrency model; see the WorkerClass
	// constants.
	// Env: GUNICORN_WORKER_CLASS
	WorkerClass string `env:"GUNICORN_WORKER_CLASS" envDefault:"sync"`
}

// GetServerConfig loads and validates the serving-layer settings from the
// environment, filling in the machine-derived worker default.
func GetServerConfig() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error reading server settings from environment: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 2*runtime.NumCPU() + 1
	}

	return cfg, cfg.validate()
}

// validate checks the settings no later consumer can recover from. Address
// problems are left to the listener, which reports them far more precisely.
func (cfg *Server) validate() error {
	switch cfg.WorkerClass {
	case WorkerClassSync, WorkerClassGThread:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWorkerClass, cfg.WorkerClass)
	}
}

// Address resolves the listen address. A platform-provided PORT wins and
// binds on all interfaces; otherwise Bind is used as-is.
func (cfg *Server) Address() string {
	if cfg.Port != "" {
		return "0.0.0.0:" + cfg.Port
	}

	return cfg.Bind
}

// RequestTimeout returns the per-request budget as a duration.
func (cfg *Server) RequestTimeout() time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}

// KeepAliveTimeout returns the idle-connection budget as a duration.
func (cfg *Server) KeepAliveTimeout() time.Duration {
	return time.Duration(cfg.KeepAlive) * time.Second
}

// MaxConcurrency is the number of requests allowed in flight at once: the
// in-process equivalent of the worker pool an external process manager would
// run. Sync workers serve one request each; gthread workers serve one per
// thread.
func (cfg *Server) MaxConcurrency() int {
	if cfg.WorkerClass == WorkerClassGThread {
		return cfg.Workers * cfg.Threads
	}

	return cfg.Workers
}
