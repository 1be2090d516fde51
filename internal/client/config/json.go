package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/flagx"
	"github.com/dmitrijs2005/marketadmin/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig is a DTO used exclusively for config file unmarshalling. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	StoragePath    *string         `json:"storage_path" yaml:"storage_path"`
	PageSize       *int            `json:"page_size" yaml:"page_size"`
	StrictOrdering *bool           `json:"strict_ordering" yaml:"strict_ordering"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &jc)
	default:
		err = json.Unmarshal(data, &jc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.StrictOrdering != nil {
		cfg.StrictOrdering = *jc.StrictOrdering
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
