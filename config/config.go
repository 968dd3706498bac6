// SPDX-License-Identifier: MIT

// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every rejected setting.
var ErrInvalidConfig = errors.New("config: invalid value")

// Store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Store   StoreConfig
	Fare    FareConfig
	Logging LoggingConfig
}

// HTTPConfig governs the HTTP server.
type HTTPConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// StoreConfig selects and locates the station/line store.
type StoreConfig struct {
	Backend     string // memory|sqlite|postgres
	SQLitePath  string
	PostgresDSN string
	// NetworkFile is the YAML catalog loaded into the memory store.
	NetworkFile string
}

// FareConfig locates an optional fare policy file. Empty means defaults.
type FareConfig struct {
	PolicyFile string
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultAddr          = ":8080"
	defaultReadTimeout   = 10 * time.Second
	defaultWriteTimeout  = 15 * time.Second
	defaultStore         = StoreMemory
	defaultSQLitePath    = "metropath.db"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads a .env file from the working directory when present and then
// the environment, applying defaults. Overrides run before validation.
func Load(overrides ...func(*Config)) (Config, error) {
	_ = godotenv.Load()

	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func fromEnv() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Addr:           valueOrDefault("METROPATH_HTTP_ADDR", defaultAddr),
			AllowedOrigins: splitCSV(os.Getenv("METROPATH_ALLOWED_ORIGINS")),
		},
		Store: StoreConfig{
			Backend:     strings.ToLower(valueOrDefault("METROPATH_STORE", defaultStore)),
			SQLitePath:  valueOrDefault("METROPATH_SQLITE_PATH", defaultSQLitePath),
			PostgresDSN: os.Getenv("METROPATH_POSTGRES_DSN"),
			NetworkFile: os.Getenv("METROPATH_NETWORK_FILE"),
		},
		Fare: FareConfig{
			PolicyFile: os.Getenv("METROPATH_FARE_POLICY"),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("METROPATH_LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("METROPATH_LOG_FORMAT", defaultLoggingFormat),
		},
	}

	var err error
	if cfg.HTTP.ReadTimeout, err = parseDuration("METROPATH_HTTP_READ_TIMEOUT", defaultReadTimeout); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.WriteTimeout, err = parseDuration("METROPATH_HTTP_WRITE_TIMEOUT", defaultWriteTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Logging.IncludeCaller, err = parseBool("METROPATH_LOG_CALLER", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store.Backend) {
	case StoreMemory:
		if c.Store.NetworkFile == "" {
			return fmt.Errorf("%w: METROPATH_NETWORK_FILE is required for the memory store", ErrInvalidConfig)
		}
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("%w: METROPATH_SQLITE_PATH is empty", ErrInvalidConfig)
		}
	case StorePostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("%w: METROPATH_POSTGRES_DSN is required for the postgres store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: METROPATH_STORE %q (want memory, sqlite or postgres)", ErrInvalidConfig, c.Store.Backend)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: METROPATH_LOG_FORMAT %q (want text or json)", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, key)
	}
	return d, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	return b, nil
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
