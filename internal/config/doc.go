// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Application configuration is assembled from layered sources in a fixed
// order (later sources override earlier ones, including explicit false
// values):
//  1. Base profile, derived from the environment
//  2. Optional named variant profile (development, testing, production)
//  3. Optional machine-local override file (instance/config.json)
//
// The main entry points are [Resolve] for the application configuration and
// [GetServerConfig] for the production serving-layer settings.
package config
