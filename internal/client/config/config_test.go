package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/syncer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()
	assert.Equal(t, "127.0.0.1:50051", c.ServerAddress)
	assert.Equal(t, time.Second, c.SyncInterval)
	assert.Equal(t, syncer.PolicyManual, c.Policy())
	require.NoError(t, c.Validate())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "10.0.0.1:9090", "-f", "/tmp/n.db", "-i", "2s", "-t", "300ms", "-p", "keep-both", "-l", "debug"},
			expected: &Config{
				ServerAddress: "10.0.0.1:9090", DatabasePath: "/tmp/n.db", SyncInterval: 2 * time.Second,
				RequestTimeout: 300 * time.Millisecond, ConflictPolicy: "keep-both", LogLevel: "debug",
			},
		},
		{
			name:        "bad duration",
			args:        []string{"-i", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml with env expansion keeps missing keys", func(t *testing.T) {
		t.Setenv("NOTTO_TEST_DIR", "/data")
		path := filepath.Join(dir, "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("database_path: ${NOTTO_TEST_DIR}/n.db\nsync_interval: 3s\n"), 0o600))
		withArgs(t, "-c", path)

		cfg := defaults()
		parseFile(cfg)
		assert.Equal(t, "/data/n.db", cfg.DatabasePath)
		assert.Equal(t, 3*time.Second, cfg.SyncInterval)
		assert.Equal(t, "127.0.0.1:50051", cfg.ServerAddress)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "cfg.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"server_address":"www.example:9000","request_timeout":"10s"}`), 0o600))
		withArgs(t, "-config", path)

		cfg := defaults()
		parseFile(cfg)
		assert.Equal(t, "www.example:9000", cfg.ServerAddress)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("no file flag leaves config alone", func(t *testing.T) {
		withArgs(t)
		cfg := defaults()
		parseFile(cfg)
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid file panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		withArgs(t, "-c", bad)
		require.Panics(t, func() { parseFile(defaults()) })
	})
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_address":"file:1","log_level":"info","conflict_policy":"keep-local"}`), 0o600))
	t.Setenv(EnvServerAddress, "env:2")
	t.Setenv(EnvLogLevel, "error")
	withArgs(t, "-c", path, "-a", "flag:3")

	cfg := LoadConfig()
	assert.Equal(t, "flag:3", cfg.ServerAddress)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, syncer.PolicyKeepLocal, cfg.Policy())
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv(EnvSyncInterval, "often")
	require.Panics(t, func() { parseEnv(defaults()) })
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.ConflictPolicy = "merge"
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.ServerAddress = ""
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.SyncInterval = time.Microsecond
	assert.Error(t, cfg.Validate())
}
