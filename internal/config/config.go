package config

import (
	"github.com/caarlos0/env/v11"

	"agency-campaigns/internal/config/configs"
)

// databaseURLKey is the fully prefixed variable holding the store address.
const databaseURLKey = "DATABASE_URL"

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Database configures the MongoDB connection. Environment variables
	// prefixed with DATABASE_ will populate this struct.
	Database configs.Mongo `envPrefix:"DATABASE_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var (
		cfg    Config
		urlSet bool
	)
	opts := env.Options{
		OnSet: func(tag string, _ any, isDefault bool) {
			if tag == databaseURLKey && !isDefault {
				urlSet = true
			}
		},
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	cfg.Database.URLSet = urlSet
	return cfg, nil
}
