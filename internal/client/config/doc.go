// Package config loads runtime configuration for the notto CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config. ${VAR}
//     references inside the file are expanded from the environment.
//  3. NOTTO_* environment variables, which main may seed from a .env file.
//  4. Command-line flags.
//
// Example YAML:
//
//	server_address: 127.0.0.1:50051
//	database_path: ${HOME}/.notto.db
//	sync_interval: 1s
//	conflict_policy: keep-both
package config
