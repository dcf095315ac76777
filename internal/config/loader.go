package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration. Sources, lowest priority first: env-default
// tags, the YAML file, then the process environment. Variables from a .env
// file (DOTENV_PATH, default ./.env) are added to the environment first
// without overriding anything already set.
//
// The YAML file is CONFIG_PATH or ./config.yaml. A missing default file is
// fine; a missing explicit CONFIG_PATH is an error.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	path, explicit := lookupPath("CONFIG_PATH", defaultConfigPath)

	var cfg Config
	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func loadDotenv() error {
	path, explicit := lookupPath("DOTENV_PATH", ".env")

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", path, err)
}

func lookupPath(env, fallback string) (path string, explicit bool) {
	if p := os.Getenv(env); p != "" {
		return p, true
	}
	return fallback, false
}
