package config

import "errors"

// Resolution errors returned by [Resolve] and [GetServerConfig]. All of them
// are construction-time failures: the process must not start on a partially
// resolved configuration.
var (
	// ErrUnknownProfile indicates that a variant profile name passed to
	// [Resolve] does not match any defined profile.
	ErrUnknownProfile = errors.New("unknown config profile")

	// ErrUnknownWorkerClass indicates a GUNICORN_WORKER_CLASS value this
	// server does not implement (only "sync" and "gthread" are supported).
	ErrUnknownWorkerClass = errors.New("unknown worker class")
)
