// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware. The route set
// is deliberately small: a homepage rendered from an embedded template and a
// JSON health probe. Cross-cutting concerns such as request tracing and
// access logging are handled in this package before requests reach the
// handlers.
package http
