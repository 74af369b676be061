package config

import (
	"errors"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures LoadWithOptions.
type Option func(*options)

type options struct {
	prefix      string
	envFiles    []string
	environment map[string]string
}

// WithPrefix requires every variable name to start with prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads the given .env files. Values already present in the
// environment take precedence over file values.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.environment = vars
		}
	}
}

// LoadWithOptions parses environment variables into v without caching.
func LoadWithOptions[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars := make(map[string]string)
	if len(o.envFiles) > 0 {
		fileVars, err := godotenv.Read(o.envFiles...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(vars, fileVars)
	}

	if o.environment != nil {
		maps.Copy(vars, o.environment)
	} else {
		maps.Copy(vars, env.ToMap(os.Environ()))
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	*v = parsed
	return nil
}
