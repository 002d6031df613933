// Package config loads service configuration from SAGA_* environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-saga/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "SAGA_"

// Narrator providers
const (
	NarratorStatic = "static"
	NarratorOllama = "ollama"
)

// Config holds everything the server needs to boot
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"saga.db"`
	ContentPath string `env:"CONTENT_PATH"`

	ProtagonistName string `env:"PROTAGONIST_NAME" envDefault:"Kael Varyn"`

	NarratorProvider string        `env:"NARRATOR_PROVIDER" envDefault:"static"`
	OllamaURL        string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel      string        `env:"OLLAMA_MODEL" envDefault:"llama3"`
	NarratorTimeout  time.Duration `env:"NARRATOR_TIMEOUT" envDefault:"10s"`
	NarratorMaxTries uint          `env:"NARRATOR_MAX_TRIES" envDefault:"3"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks cross-field constraints the struct tags cannot express
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)

	switch c.NarratorProvider {
	case NarratorStatic:
	case NarratorOllama:
		errors.ValidateRequired("OLLAMA_URL", c.OllamaURL, vb)
		errors.ValidateRequired("OLLAMA_MODEL", c.OllamaModel, vb)
	default:
		vb.InvalidField("NARRATOR_PROVIDER", "must be static or ollama")
	}

	if c.NarratorTimeout <= 0 {
		vb.InvalidField("NARRATOR_TIMEOUT", "must be positive")
	}
	if c.NarratorMaxTries == 0 {
		vb.InvalidField("NARRATOR_MAX_TRIES", "must be at least 1")
	}

	return vb.Build()
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
