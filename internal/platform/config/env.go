// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the tools.
const EnvPrefix = "ANDARIA_"

// ParseEnv loads configuration from ANDARIA_-prefixed environment variables.
// Struct tags name variables without the prefix.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: EnvPrefix})
}

// ParseEnvFrom loads configuration from environ instead of the process
// environment. Keys in environ carry the prefix.
func ParseEnvFrom(target any, environ map[string]string) error {
	return parse(target, env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(target any, opts env.Options) error {
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
