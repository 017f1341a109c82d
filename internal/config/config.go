package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the process settings read from the environment.
type Config struct {
	Port           string
	DatabaseDriver string
	DatabasePath   string
	DatabaseURL    string
	// BcryptCost of 0 stores passwords as submitted. Any other value turns
	// on bcrypt hashing, which changes what ends up in the users table.
	BcryptCost    int
	RegisterRate  float64
	RegisterBurst int
	LogLevel      slog.Level
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	var errs []error

	// A missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, fmt.Errorf("load .env: %w", err))
	}

	cfg := Config{
		Port:           envOrDefault("PORT", "8080"),
		DatabaseDriver: strings.ToLower(envOrDefault("DATABASE_DRIVER", DriverSQLite)),
		DatabasePath:   envOrDefault("DATABASE_PATH", "job-portal.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}

	var err error

	switch cfg.DatabaseDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DATABASE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.DatabaseDriver))
	}

	if cfg.BcryptCost, err = envInt("BCRYPT_COST", 0); err != nil {
		errs = append(errs, err)
	} else if cfg.BcryptCost != 0 && (cfg.BcryptCost < 4 || cfg.BcryptCost > 14) {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be 0 or between 4 and 14, got %d", cfg.BcryptCost))
	}

	if cfg.RegisterRate, err = envFloat("REGISTER_RATE", 0.2); err != nil {
		errs = append(errs, err)
	} else if cfg.RegisterRate < 0 {
		errs = append(errs, fmt.Errorf("REGISTER_RATE must not be negative, got %g", cfg.RegisterRate))
	}

	if cfg.RegisterBurst, err = envInt("REGISTER_BURST", 5); err != nil {
		errs = append(errs, err)
	} else if cfg.RegisterBurst < 1 {
		errs = append(errs, fmt.Errorf("REGISTER_BURST must be at least 1, got %d", cfg.RegisterBurst))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL: %w", err))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, defaultVal float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
