package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_status_bot/internal/infra/config"
)

func TestInit_WritesToStdoutAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	var stdout bytes.Buffer

	cfg := &config.AppConfig{LogLevel: "debug", Environment: "development", LogFile: path}
	require.NoError(t, initWith(cfg, &stdout))
	t.Cleanup(Close)

	Component("poller").Info("status unchanged")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.Contains(t, stdout.String(), "status unchanged")
	assert.Contains(t, string(data), "status unchanged")
	assert.Contains(t, string(data), "component=poller")
	assert.Contains(t, string(data), "logger_test.go", "caller must be reported")
}

func TestInit_JSONInProduction(t *testing.T) {
	var stdout bytes.Buffer
	cfg := &config.AppConfig{LogLevel: "info", Environment: "production"}
	require.NoError(t, initWith(cfg, &stdout))

	stdout.Reset()
	Log.Warn("json line")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stdout.String())), &entry))
	assert.Equal(t, "json line", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.Contains(t, entry, "file")
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	var stdout bytes.Buffer
	cfg := &config.AppConfig{LogLevel: "verbose", Environment: "development"}
	require.NoError(t, initWith(cfg, &stdout))

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.Contains(t, stdout.String(), "Invalid log level")
}

func TestInit_UnwritableFile(t *testing.T) {
	cfg := &config.AppConfig{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "missing", "log.txt")}
	err := initWith(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}
