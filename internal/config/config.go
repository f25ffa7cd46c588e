package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/xslog"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	dataDir = ".zeitrechner"
	dbName  = "zeitrechner.db"
	logName = "zeitrechner.log"
)

type Config struct {
	DBPath        string        `env:"DB"`
	LogFile       string        `env:"LOG_FILE"`
	LogLevel      xslog.Level   `env:"LOG_LEVEL" envDefault:"info"`
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"30s"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"2s"`
	LogUseCases   bool          `env:"LOG_USECASES"`
}

// Read loads an optional .env file and parses ZEITRECHNER_* variables.
// Empty paths resolve to files under ~/.zeitrechner.
func Read() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "ZEITRECHNER_"})
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	if cfg.WatchInterval <= 0 {
		return Config{}, fmt.Errorf("watch interval must be positive, got %s", cfg.WatchInterval)
	}

	if cfg.DBPath == "" || cfg.LogFile == "" {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, dbName)
		}
		if cfg.LogFile == "" {
			cfg.LogFile = filepath.Join(dir, logName)
		}
	}
	return cfg, nil
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, dataDir), nil
}
