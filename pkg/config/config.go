package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Config holds the engine's runtime settings, loaded from the environment.
type Config struct {
	Port          string
	MaxIterations int
	GeneratorSeed int64
	LogLevel      zerolog.Level
}

// Load reads configuration from environment variables, applying the same
// fallback-with-validation style as the rest of the engine's env reads:
// a bad value is a hard error, not a silently ignored default.
func Load() (*Config, error) {
	maxIterations, err := getEnvInt("MAX_ITERATIONS", 1000)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if maxIterations <= 0 {
		return nil, fmt.Errorf("config: MAX_ITERATIONS must be positive, got %d", maxIterations)
	}

	seed, err := getEnvInt64("GENERATOR_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MaxIterations: maxIterations,
		GeneratorSeed: seed,
		LogLevel:      level,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, val)
	}
	return n, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, val)
	}
	return n, nil
}
