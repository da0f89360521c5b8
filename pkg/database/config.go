package database

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds database connection settings.
type Config struct {
	DSN string

	// Pool sizing: the pool keeps PoolSize idle connections and may open
	// up to PoolSize + MaxOverflow under load.
	PoolSize    int
	MaxOverflow int

	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadConfigFromEnv loads database configuration from the environment.
// DATABASE_URL is required.
func LoadConfigFromEnv() (Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	poolSize, err := strconv.Atoi(getEnvOrDefault("DB_POOL_SIZE", "5"))
	if err != nil || poolSize < 1 {
		return Config{}, fmt.Errorf("invalid DB_POOL_SIZE: %q", os.Getenv("DB_POOL_SIZE"))
	}
	maxOverflow, err := strconv.Atoi(getEnvOrDefault("DB_MAX_OVERFLOW", "10"))
	if err != nil || maxOverflow < 0 {
		return Config{}, fmt.Errorf("invalid DB_MAX_OVERFLOW: %q", os.Getenv("DB_MAX_OVERFLOW"))
	}

	return Config{
		DSN:             dsn,
		PoolSize:        poolSize,
		MaxOverflow:     maxOverflow,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

// DatabaseName extracts the database name from the DSN for migration
// bookkeeping. Falls back to "lens" when the DSN cannot be parsed.
func (c Config) DatabaseName() string {
	u, err := url.Parse(c.DSN)
	if err != nil || len(u.Path) <= 1 {
		return "lens"
	}
	return u.Path[1:]
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
