package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	ErrInvalidTimeout  = errors.New("request timeout must be positive")
	ErrInvalidPageSize = errors.New("page size must be at least 1")
)

// Config holds runtime settings for the console.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StoragePath    string
	PageSize       int
	StrictOrdering bool
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.StoragePath = "marketadmin.db"
	c.PageSize = 5
	c.StrictOrdering = false
	c.LogLevel = "info"
}

// Load builds a Config from defaults, then the JSON file, then the
// environment, then args (usually os.Args[1:]).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.RequestTimeout)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, c.PageSize)
	}
	return nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
