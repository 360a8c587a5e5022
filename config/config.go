package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config is configuration of refiner-demo
type Config struct {
	Width      int
	Height     int
	MaxHistory int
	Frames     int
	LogLevel   zerolog.Level
}

func Default() *Config {
	return &Config{
		Width:      64,
		Height:     48,
		MaxHistory: 3,
		Frames:     30,
		LogLevel:   zerolog.InfoLevel,
	}
}

// Load reads configuration from environment. Variables from .env are loaded first if file exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds configuration using lookup function. Empty variables keep defaults
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{"REFINER_WIDTH", &cfg.Width},
		{"REFINER_HEIGHT", &cfg.Height},
		{"REFINER_MAX_HISTORY", &cfg.MaxHistory},
		{"REFINER_FRAMES", &cfg.Frames},
	}
	for _, item := range ints {
		raw := getenv(item.key)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse %s", item.key)
		}
		*item.dst = value
	}
	if raw := getenv("REFINER_LOG_LEVEL"); raw != "" {
		level, err := zerolog.ParseLevel(raw)
		if err != nil {
			return nil, errors.Wrap(err, "Can't parse REFINER_LOG_LEVEL")
		}
		cfg.LogLevel = level
	}
	if cfg.Frames < 0 {
		return nil, errors.Errorf("REFINER_FRAMES must not be negative, got %d", cfg.Frames)
	}
	return cfg, nil
}
