package config

import (
	"fmt"
	"os"
)

// Config holds runtime settings for the crmkeeper CLI.
type Config struct {
	DatabaseDSN string `env:"CRM_DB_DSN"`
	LogLevel    string `env:"CRM_LOG_LEVEL"`
	LogFormat   string `env:"CRM_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "crm.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment and
// the process arguments, later sources taking precedence.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
