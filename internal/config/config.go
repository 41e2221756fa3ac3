// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings.
type Config struct {
	DBPath       string        // SQLite database file
	TickInterval time.Duration // orchestrator cadence
	Speed        int           // tick speed multiplier, 0 pauses
	Seed         int64         // session RNG seed, 0 derives from the clock
	LogLevel     string        // debug, info, warn, error
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:       getString("STARFORGE_DB", "data/starforge.db"),
		LogLevel:     getString("STARFORGE_LOG_LEVEL", "info"),
		TickInterval: time.Second,
		Speed:        1,
		Seed:         0,
	}

	var err error
	if cfg.TickInterval, err = getDuration("STARFORGE_TICK_INTERVAL", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Speed, err = getInt("STARFORGE_SPEED", 1); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getInt64("STARFORGE_SEED", 0); err != nil {
		return Config{}, err
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("config: STARFORGE_TICK_INTERVAL must be positive")
	}
	if cfg.Speed < 0 {
		return Config{}, fmt.Errorf("config: STARFORGE_SPEED must not be negative")
	}
	return cfg, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return n, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return d, nil
}
