package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/notto/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-h string     health HTTP bind address
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-t duration   session token validity
//	-i duration   expired session purge interval
//	-l string     log level
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name (enables offload)
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.GRPCAddress, "a", config.GRPCAddress, "address and port to run gRPC server")
	fs.StringVar(&config.HTTPAddress, "h", config.HTTPAddress, "address and port to run health endpoints")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidity, "t", config.TokenValidity, "session token validity")
	fs.DurationVar(&config.SessionPurgeInterval, "i", config.SessionPurgeInterval, "expired session purge interval")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := flagx.Parse(fs, os.Args[1:]); err != nil {
		panic(err)
	}
}
