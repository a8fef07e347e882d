// Package configx loads config files and environment overrides shared by the
// client and server config packages.
package configx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadFile reads filename, expands ${VAR} references from the environment
// and decodes it into target. ".yaml" and ".yml" files are decoded as YAML,
// anything else as JSON.
func LoadFile[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(expanded, target)
	default:
		err = json.Unmarshal(expanded, target)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return nil
}

// String overwrites *dst with the value of key when the variable is set.
func String(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// Duration overwrites *dst with the parsed value of key when the variable is set.
func Duration(key string, dst *time.Duration) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("env %s: %w", key, err)
	}
	*dst = d
	return nil
}
