package config

import "github.com/dmitrijs2005/notto/internal/configx"

// Environment variables, read after the config file.
const (
	EnvServerAddress  = "NOTTO_SERVER_ADDRESS"
	EnvDatabasePath   = "NOTTO_DB_PATH"
	EnvSyncInterval   = "NOTTO_SYNC_INTERVAL"
	EnvRequestTimeout = "NOTTO_REQUEST_TIMEOUT"
	EnvConflictPolicy = "NOTTO_CONFLICT_POLICY"
	EnvLogLevel       = "NOTTO_LOG_LEVEL"
)

func parseEnv(cfg *Config) {
	configx.String(EnvServerAddress, &cfg.ServerAddress)
	configx.String(EnvDatabasePath, &cfg.DatabasePath)
	configx.String(EnvConflictPolicy, &cfg.ConflictPolicy)
	configx.String(EnvLogLevel, &cfg.LogLevel)
	if err := configx.Duration(EnvSyncInterval, &cfg.SyncInterval); err != nil {
		panic(err)
	}
	if err := configx.Duration(EnvRequestTimeout, &cfg.RequestTimeout); err != nil {
		panic(err)
	}
}
