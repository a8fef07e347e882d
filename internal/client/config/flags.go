package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/notto/internal/flagx"
)

// parseFlags populates Config fields from command-line flags:
//
//	-a string     server address
//	-f string     database file
//	-i duration   sync poll interval
//	-t duration   request timeout
//	-p string     conflict policy
//	-l string     log level
//
// Flags this set does not define, such as -c/-config, are skipped.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the local database file")
	fs.DurationVar(&cfg.SyncInterval, "i", cfg.SyncInterval, "sync poll interval")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.ConflictPolicy, "p", cfg.ConflictPolicy, "conflict policy: manual, last-write-wins, keep-local, keep-both, take-remote")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := flagx.Parse(fs, os.Args[1:]); err != nil {
		panic(err)
	}
}
