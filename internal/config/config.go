package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`

	// Store configuration
	MongoURI      string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGO_DATABASE" default:"company_settings"`
	MongoTimeout  time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`

	// Logging configuration
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from the environment. A .env file in the working
// directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("MONGO_DATABASE is required")
	}
	return nil
}
