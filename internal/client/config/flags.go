package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/crmkeeper/internal/flagx"
)

// parseFlags populates Config fields from the -d, -l and -f flags. Other
// arguments are filtered out first so they do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN of the local store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	return fs.Parse(flagx.FilterArgs(args, []string{"-d", "-l", "-f"}))
}
