package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// handled here are parsed; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-p", "-l"}, "-s")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "path of the local token database")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "default page size")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.StrictOrdering, "s", cfg.StrictOrdering, "apply only the newest response per operation")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -t only wins when given, so sub-second file and env values survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
