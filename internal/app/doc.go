// Package app assembles the application object served by the entry points.
//
// The factory resolves the layered configuration, attaches the route
// registry, and returns an object that serves HTTP requests directly. Both
// the development server and the production server mount the same object;
// only the surrounding process differs.
package app
