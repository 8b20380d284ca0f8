// Package server wires and runs the application's HTTP server.
//
// It builds the listener from the serving-layer settings, caps request
// concurrency at the configured worker capacity, and handles startup,
// signal handling, and graceful shutdown.
package server
