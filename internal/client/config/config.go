package config

import (
	"time"

	"github.com/dmitrijs2005/notto/internal/client/syncer"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds runtime settings for the notto CLI.
type Config struct {
	ServerAddress  string
	DatabasePath   string
	SyncInterval   time.Duration
	RequestTimeout time.Duration
	ConflictPolicy string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddress = "127.0.0.1:50051"
	c.DatabasePath = "notto.db"
	c.SyncInterval = syncer.DefaultInterval
	c.RequestTimeout = 5 * time.Second
	c.ConflictPolicy = string(syncer.PolicyManual)
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the config file, then NOTTO_*
// environment variables, then command-line flags. Later sources win.
// Malformed input panics, as at any other start-up failure.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerAddress, validation.Required),
		validation.Field(&c.DatabasePath, validation.Required),
		validation.Field(&c.SyncInterval, validation.Required, validation.Min(10*time.Millisecond)),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.ConflictPolicy, validation.In(
			string(syncer.PolicyManual),
			string(syncer.PolicyLastWriteWins),
			string(syncer.PolicyKeepLocal),
			string(syncer.PolicyKeepBoth),
			string(syncer.PolicyTakeRemote),
		)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// Policy returns the configured default conflict policy.
func (c *Config) Policy() syncer.Policy {
	p, err := syncer.ParsePolicy(c.ConflictPolicy)
	if err != nil {
		return syncer.PolicyManual
	}
	return p
}
