// Package config loads runtime configuration for the crmkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables CRM_DB_DSN, CRM_LOG_LEVEL, CRM_LOG_FORMAT.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   SQLite DSN of the local store
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//
// # JSON schema
//
//	{
//	  "database_dsn": "crm.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
