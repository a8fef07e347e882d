package config

import (
	"github.com/dmitrijs2005/notto/internal/configx"
	"github.com/dmitrijs2005/notto/internal/flagx"
	"github.com/dmitrijs2005/notto/internal/timex"
)

// FileConfig is the on-disk shape of the server config, JSON or YAML.
type FileConfig struct {
	GRPCAddress          string         `json:"grpc_address" yaml:"grpc_address"`
	HTTPAddress          string         `json:"http_address" yaml:"http_address"`
	DatabaseDSN          string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey            string         `json:"secret_key" yaml:"secret_key"`
	TokenValidity        timex.Duration `json:"token_validity" yaml:"token_validity"`
	SessionPurgeInterval timex.Duration `json:"session_purge_interval" yaml:"session_purge_interval"`
	LogLevel             string         `json:"log_level" yaml:"log_level"`
	S3RootUser           string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region             string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
}

// parseFile overlays cfg with the file named by -c/-config. If the file
// cannot be read or decoded, the function panics.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := configx.LoadFile(path, &fc); err != nil {
		panic(err)
	}

	setString(&cfg.GRPCAddress, fc.GRPCAddress)
	setString(&cfg.HTTPAddress, fc.HTTPAddress)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.S3RootUser, fc.S3RootUser)
	setString(&cfg.S3RootPassword, fc.S3RootPassword)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	if fc.TokenValidity.Duration > 0 {
		cfg.TokenValidity = fc.TokenValidity.Duration
	}
	if fc.SessionPurgeInterval.Duration > 0 {
		cfg.SessionPurgeInterval = fc.SessionPurgeInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
