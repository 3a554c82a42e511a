package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotenv = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	prefix  string
	dotenv  []string
	environ map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "SPECCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithDotenv reads variables from the given files. Unlike the default .env
// file, listed files must exist.
func WithDotenv(files ...string) Option {
	return func(o *options) { o.dotenv = append(o.dotenv, files...) }
}

// WithEnviron replaces the process environment as the source of variables.
func WithEnviron(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load parses the environment into a new T according to its env struct tags.
//
// Variables from dotenv files never override variables already present in the
// environment. When no file is configured the optional .env file of the working
// directory is read.
//
//	type Config struct {
//		Env     string `env:"ENV" envDefault:"development"`
//		Workers int    `env:"WORKERS" envDefault:"1"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("SPECCHECK_"))
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environ, err := o.resolve()
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: environ,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func (o *options) resolve() (map[string]string, error) {
	environ := o.environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	var fromFiles map[string]string
	if len(o.dotenv) == 0 {
		// The default file is optional.
		fromFiles, _ = godotenv.Read(defaultDotenv)
	} else {
		var err error
		if fromFiles, err = godotenv.Read(o.dotenv...); err != nil {
			return nil, errors.Join(ErrReadingDotenv, err)
		}
	}

	if len(fromFiles) == 0 {
		return environ, nil
	}

	merged := make(map[string]string, len(environ)+len(fromFiles))
	for k, v := range fromFiles {
		merged[k] = v
	}
	for k, v := range environ {
		merged[k] = v
	}
	return merged, nil
}
