package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configResolver accumulates configuration source layers in override order:
// the first appended layer is the lowest priority, the last one wins.
type configResolver struct {
	layers []*Overrides
	err    error
}

func newConfigResolver() *configResolver {
	return &configResolver{
		layers: make([]*Overrides, 0, 3),
	}
}

// withBase appends the environment-derived base profile. Every resolution
// chain starts with it; it is the only layer guaranteed to cover all options.
func (r *configResolver) withBase() *configResolver {
	base, err := baseOverrides()
	if err != nil {
		r.err = errors.Join(r.err, err)
		return r
	}

	r.layers = append(r.layers, base)
	return r
}

// withProfile appends the variant layer for name. An empty name means no
// variant was requested and is not an error; an unknown name is recorded
// and fails the final resolve.
func (r *configResolver) withProfile(name string) *configResolver {
	if name == "" {
		return r
	}

	variant, ok := variantOverrides(name)
	if !ok {
		r.err = errors.Join(r.err, fmt.Errorf("%w: %q", ErrUnknownProfile, name))
		return r
	}

	r.layers = append(r.layers, variant)
	return r
}

// withInstanceFile probes dir for the machine-local override file and
// appends its layer when the file exists. A missing file contributes
// nothing; a present-but-unreadable or malformed file is recorded as an
// error.
func (r *configResolver) withInstanceFile(dir string) *configResolver {
	overrides, err := parseInstanceFile(dir)
	if err != nil {
		r.err = errors.Join(r.err, err)
		return r
	}

	if overrides != nil {
		r.layers = append(r.layers, overrides)
	}

	return r
}

// resolve merges the accumulated layers in order and materializes the final
// Config. Later layers strictly overwrite options set by earlier ones.
// WithoutDereference keeps the merge at the pointer level: any non-nil
// field of a later layer, including a pointer to false, replaces the
// earlier value, while a nil field leaves it untouched.
func (r *configResolver) resolve() (*Config, error) {
	if r.err != nil {
		return nil, fmt.Errorf("error occured during resolving config: %w", r.err)
	}

	merged := new(Overrides)
	for _, layer := range r.layers {
		if err := mergo.Merge(merged, layer, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	cfg := new(Config)
	if merged.SecretKey != nil {
		cfg.SecretKey = *merged.SecretKey
	}
	if merged.Debug != nil {
		cfg.Debug = *merged.Debug
	}
	if merged.Testing != nil {
		cfg.Testing = *merged.Testing
	}

	return cfg, nil
}
