package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "bank_ledger", cfg.Metrics.Namespace)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv does not override variables that are already set, so make
	// sure the ones under test are unset and cleaned up afterwards.
	for _, key := range []string{"RUN_ADDRESS", "KAFKA_BROKERS", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "RUN_ADDRESS=127.0.0.1:9090\nKAFKA_BROKERS=k1:9092,k2:9092\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPServer.Address)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.ShutdownTimeout)
}
