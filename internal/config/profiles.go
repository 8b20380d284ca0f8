// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Overrides is one source layer in the configuration override chain. A nil
// field means the source says nothing about that option and earlier layers
// keep their value; a non-nil field, including a pointer to false, strictly
// replaces whatever earlier layers set.
//
// Pointer fields are what make boolean overrides work: a variant that turns
// debug off must be distinguishable from a variant that does not mention
// debug at all.
type Overrides struct {
	// SecretKey overrides the signing secret.
	SecretKey *string `json:"secret_key"`

	// Debug overrides the debug flag.
	Debug *bool `json:"debug"`

	// Testing overrides the testing flag.
	Testing *bool `json:"testing"`
}

// baseEnv is the environment surface of the base profile, mapped via
// caarlos0/env struct tags.
type baseEnv struct {
	// SecretKey comes from SECRET_KEY; the default applies only when the
	// variable is unset, matching os.environ.get semantics.
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-secret-change-me"`

	// Debug carries the raw FLASK_DEBUG value. Only the literal "1"
	// enables debug, so it is read as a string and compared, not parsed
	// as a boolean.
	Debug string `env:"FLASK_DEBUG"`
}

// baseOverrides builds the base profile: a complete layer covering every
// option, derived from the environment with documented fallbacks. It cannot
// fail on missing variables.
func baseOverrides() (*Overrides, error) {
	e := baseEnv{}
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("error reading base profile from environment: %w", err)
	}

	return &Overrides{
		SecretKey: strPtr(e.SecretKey),
		Debug:     boolPtr(e.Debug == "1"),
		Testing:   boolPtr(false),
	}, nil
}

// variantOverrides returns the override layer for a named variant profile:
// exactly the options the variant replaces on top of the base profile. The
// second return value reports whether the name is known.
func variantOverrides(name string) (*Overrides, bool) {
	switch name {
	case Development:
		return &Overrides{Debug: boolPtr(true)}, true
	case Testing:
		return &Overrides{Debug: boolPtr(true), Testing: boolPtr(true)}, true
	case Production:
		return &Overrides{Debug: boolPtr(false)}, true
	default:
		return nil, false
	}
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
