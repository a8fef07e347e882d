package config

import (
	"github.com/dmitrijs2005/notto/internal/configx"
	"github.com/dmitrijs2005/notto/internal/flagx"
	"github.com/dmitrijs2005/notto/internal/timex"
)

// FileConfig is the on-disk shape of the config, JSON or YAML. Durations
// accept "1s" style strings or integer nanoseconds.
type FileConfig struct {
	ServerAddress  string         `json:"server_address" yaml:"server_address"`
	DatabasePath   string         `json:"database_path" yaml:"database_path"`
	SyncInterval   timex.Duration `json:"sync_interval" yaml:"sync_interval"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ConflictPolicy string         `json:"conflict_policy" yaml:"conflict_policy"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. Keys missing
// from the file keep their current values.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := configx.LoadFile(path, &fc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerAddress, fc.ServerAddress)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.ConflictPolicy, fc.ConflictPolicy)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.SyncInterval.Duration > 0 {
		cfg.SyncInterval = fc.SyncInterval.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
