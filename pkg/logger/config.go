package logger

import (
	"log/slog"
)

// Config is the environment-driven logger configuration.
// Load it with config.Load(&cfg).
type Config struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format      Format     `env:"LOG_FORMAT" envDefault:"json"`
	Service     string     `env:"LOG_SERVICE"`
	Environment string     `env:"APP_ENV" envDefault:"development"`
}

// NewFromConfig builds a logger from cfg. Extra options are applied last and
// win over the configured values.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	base := []Option{}
	if cfg.Service != "" {
		base = append(base, WithEnvironment(cfg.Environment, cfg.Service))
	}
	base = append(base, WithLevel(cfg.Level))
	if cfg.Format != "" {
		base = append(base, WithFormat(cfg.Format))
	}
	return New(append(base, opts...)...)
}
