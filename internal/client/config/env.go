package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "MARKETADMIN"

type envConfig struct {
	APIBaseURL     string        `envconfig:"API_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	StoragePath    string        `envconfig:"STORAGE_PATH"`
	PageSize       int           `envconfig:"PAGE_SIZE"`
	StrictOrdering bool          `envconfig:"STRICT_ORDERING"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays cfg with MARKETADMIN_* variables. Unset variables leave
// the current value in place.
func parseEnv(cfg *Config) error {
	ec := envConfig{
		APIBaseURL:     cfg.APIBaseURL,
		RequestTimeout: cfg.RequestTimeout,
		StoragePath:    cfg.StoragePath,
		PageSize:       cfg.PageSize,
		StrictOrdering: cfg.StrictOrdering,
		LogLevel:       cfg.LogLevel,
	}
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	cfg.APIBaseURL = ec.APIBaseURL
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.StoragePath = ec.StoragePath
	cfg.PageSize = ec.PageSize
	cfg.StrictOrdering = ec.StrictOrdering
	cfg.LogLevel = ec.LogLevel
	return nil
}
