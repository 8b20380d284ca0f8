// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Names of the variant profiles understood by [Resolve]. Passing any other
// non-empty name fails resolution.
const (
	// Development enables debug behaviour for local work.
	Development = "development"

	// Testing marks the configuration for test runs; it also enables
	// debug so failures surface with full detail.
	Testing = "testing"

	// Production disables debug regardless of what the environment says.
	Production = "production"
)

const (
	// DefaultInstanceDir is the directory, relative to the process working
	// directory, probed for the machine-local override file. It is meant to
	// stay out of version control and may hold secrets.
	DefaultInstanceDir = "instance"

	// instanceFileName is the override file looked up inside the instance
	// directory.
	instanceFileName = "config.json"
)

// Config is the resolved application configuration: the final mapping
// produced by merging the base profile, an optional variant profile, and an
// optional machine-local override file.
//
// A Config is constructed once at process start and never mutated
// afterwards; the application object owns it exclusively.
type Config struct {
	// SecretKey is the value used to sign session material. Defaults to a
	// development placeholder; override via the SECRET_KEY environment
	// variable or the machine-local override file.
	SecretKey string

	// Debug enables verbose diagnostics. Derived from FLASK_DEBUG == "1"
	// in the base profile; variant profiles override it.
	Debug bool

	// Testing marks the configuration as belonging to a test run.
	Testing bool
}

// Resolve builds the final application configuration.
//
// Sources are applied in a fixed order, later sources strictly overwriting
// any option they set:
//  1. the base profile (environment-derived);
//  2. the variant profile named by profileName, when non-empty;
//  3. the machine-local override file under instanceDir, when present.
//
// Absence of the optional sources is not an error. An unknown profile name
// or a present-but-malformed override file fails resolution; the caller is
// expected to treat that as fatal and not start the process.
func Resolve(profileName, instanceDir string) (*Config, error) {
	return newConfigResolver().
		withBase().
		withProfile(profileName).
		withInstanceFile(instanceDir).
		resolve()
}
