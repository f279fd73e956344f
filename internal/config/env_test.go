package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "HISTORY_DB", "SHUTDOWN_TIMEOUT", "SCENARIO_CONCURRENCY"} {
		t.Setenv(k, "")
	}

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, logrus.InfoLevel, s.LogLevel)
	assert.Equal(t, "benefits-history.db", s.HistoryDB)
	assert.Equal(t, 10*time.Second, s.ShutdownTimeout)
	assert.Equal(t, 0, s.Concurrency)
}

func TestLoadSettingsFromFile(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "HISTORY_DB", "SHUTDOWN_TIMEOUT", "SCENARIO_CONCURRENCY"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=7070\nLOG_LEVEL=debug\nHISTORY_DB=/tmp/history.db\nSHUTDOWN_TIMEOUT=3s\nSCENARIO_CONCURRENCY=4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Port, "environment wins over the file")
	assert.Equal(t, logrus.DebugLevel, s.LogLevel)
	assert.Equal(t, "/tmp/history.db", s.HistoryDB)
	assert.Equal(t, 3*time.Second, s.ShutdownTimeout)
	assert.Equal(t, 4, s.Concurrency)
}

func TestLoadSettingsInvalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("SCENARIO_CONCURRENCY", "-2")
	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
