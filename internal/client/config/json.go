package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/crmkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty values
// leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
}

// parseJson overlays cfg with values from the file named by -c / -config.
// Without the flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}
