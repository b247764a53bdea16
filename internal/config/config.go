// Package config loads server configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/crawlhq/crawl-api/internal/errors"
)

// Config is the complete server configuration.
type Config struct {
	// HTTPAddress is the listen address for the API server.
	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":8080"`

	// RedisAddress is the address of the Redis instance backing all
	// repositories.
	RedisAddress string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// RedisPassword is optional.
	RedisPassword string `env:"REDIS_PASSWORD"`

	// IntentServiceURL points at the intent interpreter service. Empty
	// means keyword classification only.
	IntentServiceURL string `env:"INTENT_SERVICE_URL"`

	// IntentTimeout bounds each interpreter call.
	IntentTimeout time.Duration `env:"INTENT_TIMEOUT" envDefault:"5s"`

	// WorkerPollInterval is how often the background worker scans active
	// instances for due ticks.
	WorkerPollInterval time.Duration `env:"WORKER_POLL_INTERVAL" envDefault:"5s"`

	// ForceTickAfter is how long past an instance's tick interval the
	// worker waits before force-resolving with partial submissions.
	ForceTickAfter time.Duration `env:"FORCE_TICK_AFTER" envDefault:"2m"`

	// TickTimeout bounds each ProcessTick invocation, whether triggered
	// by the worker or the API.
	TickTimeout time.Duration `env:"TICK_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTPAddress == "" {
		vb.RequiredField("HTTP_ADDRESS")
	}
	if c.RedisAddress == "" {
		vb.RequiredField("REDIS_ADDRESS")
	}
	if c.WorkerPollInterval <= 0 {
		vb.InvalidField("WORKER_POLL_INTERVAL", "must be positive")
	}
	if c.ForceTickAfter <= 0 {
		vb.InvalidField("FORCE_TICK_AFTER", "must be positive")
	}
	if c.TickTimeout <= 0 {
		vb.InvalidField("TICK_TIMEOUT", "must be positive")
	}

	return vb.Build()
}
