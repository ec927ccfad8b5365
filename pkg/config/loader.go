package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	dotenv  []string
	prefix  string
	environ func() []string
}

// WithDotEnv reads variables from the given files. Missing files are skipped.
func WithDotEnv(paths ...string) Option {
	return func(o *options) { o.dotenv = append(o.dotenv, paths...) }
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnviron replaces os.Environ as the source of real variables.
func WithEnviron(environ func() []string) Option {
	return func(o *options) {
		if environ != nil {
			o.environ = environ
		}
	}
}

// Load parses environment variables into v according to its struct tags.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{environ: os.Environ}
	for _, opt := range opts {
		opt(&o)
	}

	vars, err := environment(o)
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: vars, Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on failure, for configuration required at startup.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func environment(o options) (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range o.dotenv {
		fileVars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrReadingDotEnv, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range fileVars {
			if _, seen := vars[k]; !seen {
				vars[k] = val
			}
		}
	}
	for k, val := range env.ToMap(o.environ()) {
		vars[k] = val
	}
	return vars, nil
}
