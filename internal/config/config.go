package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingRequired = errors.New("missing required configuration")

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string `envconfig:"APP_NAME" default:"job-tracker"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8000"`
}

type DatabaseConfig struct {
	URI            string `envconfig:"MONGODB_URL" default:"mongodb://localhost:27017"`
	Name           string `envconfig:"MONGODB_NAME" default:"job_tracker"`
	ConnectTimeout int    `envconfig:"MONGODB_CONNECT_TIMEOUT_SECONDS" default:"10"`
}

func Load() (Config, error) {
	// Env vars may also come from the shell, so a missing .env is fine.
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg.App); err != nil {
		return Config{}, err
	}
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("%w: MONGODB_URL", ErrMissingRequired)
	}
	if c.Database.Name == "" {
		return fmt.Errorf("%w: MONGODB_NAME", ErrMissingRequired)
	}
	if c.App.HTTPPort == "" {
		return fmt.Errorf("%w: HTTP_PORT", ErrMissingRequired)
	}
	return nil
}
