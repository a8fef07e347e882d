package config

import "github.com/dmitrijs2005/notto/internal/configx"

const (
	EnvGRPCAddress          = "NOTTO_SERVER_GRPC_ADDRESS"
	EnvHTTPAddress          = "NOTTO_SERVER_HTTP_ADDRESS"
	EnvDatabaseDSN          = "NOTTO_SERVER_DATABASE_DSN"
	EnvSecretKey            = "NOTTO_SERVER_SECRET_KEY"
	EnvTokenValidity        = "NOTTO_SERVER_TOKEN_VALIDITY"
	EnvSessionPurgeInterval = "NOTTO_SERVER_SESSION_PURGE_INTERVAL"
	EnvLogLevel             = "NOTTO_SERVER_LOG_LEVEL"
	EnvS3RootUser           = "NOTTO_SERVER_S3_ROOT_USER"
	EnvS3RootPassword       = "NOTTO_SERVER_S3_ROOT_PASSWORD"
	EnvS3Bucket             = "NOTTO_SERVER_S3_BUCKET"
	EnvS3Region             = "NOTTO_SERVER_S3_REGION"
	EnvS3BaseEndpoint       = "NOTTO_SERVER_S3_BASE_ENDPOINT"
)

func parseEnv(cfg *Config) {
	configx.String(EnvGRPCAddress, &cfg.GRPCAddress)
	configx.String(EnvHTTPAddress, &cfg.HTTPAddress)
	configx.String(EnvDatabaseDSN, &cfg.DatabaseDSN)
	configx.String(EnvSecretKey, &cfg.SecretKey)
	configx.String(EnvLogLevel, &cfg.LogLevel)
	configx.String(EnvS3RootUser, &cfg.S3RootUser)
	configx.String(EnvS3RootPassword, &cfg.S3RootPassword)
	configx.String(EnvS3Bucket, &cfg.S3Bucket)
	configx.String(EnvS3Region, &cfg.S3Region)
	configx.String(EnvS3BaseEndpoint, &cfg.S3BaseEndpoint)
	if err := configx.Duration(EnvTokenValidity, &cfg.TokenValidity); err != nil {
		panic(err)
	}
	if err := configx.Duration(EnvSessionPurgeInterval, &cfg.SessionPurgeInterval); err != nil {
		panic(err)
	}
}
