// Package config loads optional environment-driven defaults for the library.
// Every setting has a sane built-in value; the environment only overrides.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"dqkit/quality"
)

// Config holds the tunable defaults read from the environment
type Config struct {
	Weights        quality.Weights
	MaxConcurrency int
}

// Load reads configuration from environment variables, consulting a local
// .env file first when one exists. Unset variables keep their defaults.
//
// Recognized variables:
//
//	DQ_WEIGHT_COMPLETENESS, DQ_WEIGHT_UNIQUENESS, DQ_WEIGHT_VALIDITY,
//	DQ_WEIGHT_ACCURACY, DQ_WEIGHT_CONSISTENCY - per-dimension score weights
//	DQ_PROFILE_CONCURRENCY - max concurrent column computations
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly
	_ = godotenv.Load()

	cfg := &Config{
		Weights:        quality.DefaultWeights,
		MaxConcurrency: runtime.NumCPU(),
	}

	weights := []struct {
		key    string
		target *float64
	}{
		{"DQ_WEIGHT_COMPLETENESS", &cfg.Weights.Completeness},
		{"DQ_WEIGHT_UNIQUENESS", &cfg.Weights.Uniqueness},
		{"DQ_WEIGHT_VALIDITY", &cfg.Weights.Validity},
		{"DQ_WEIGHT_ACCURACY", &cfg.Weights.Accuracy},
		{"DQ_WEIGHT_CONSISTENCY", &cfg.Weights.Consistency},
	}
	for _, w := range weights {
		if err := loadFloat(w.key, w.target); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("DQ_PROFILE_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DQ_PROFILE_CONCURRENCY %q: %w", v, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("DQ_PROFILE_CONCURRENCY must be at least 1, got %d", n)
		}
		cfg.MaxConcurrency = n
	}

	return cfg, nil
}

func loadFloat(key string, target *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if f < 0 {
		return fmt.Errorf("%s cannot be negative, got %v", key, f)
	}
	*target = f
	return nil
}
