package environment

import (
	"context"
	"strings"
)

// Environment represents the deployment environment of the application.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a configuration value to an Environment. Short aliases
// ("dev", "stage", "prod") are accepted; unknown values fall back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) String() string {
	return string(e)
}

type contextKey struct{}

// WithContext stores env in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or Development.
func FromContext(ctx context.Context) Environment {
	if env, ok := Lookup(ctx); ok {
		return env
	}
	return Development
}

// Lookup returns the environment stored in ctx and whether one was stored.
func Lookup(ctx context.Context) (Environment, bool) {
	if ctx == nil {
		return "", false
	}
	env, ok := ctx.Value(contextKey{}).(Environment)
	return env, ok
}
