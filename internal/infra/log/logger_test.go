package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"rentql/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "rentql"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "user_id", "u-1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "rentql", record["service"])
	assert.Equal(t, "u-1", record["user_id"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLogLevel(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)

	level, err := parseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", level.String())
}

func TestNewWithWriter_RedactsSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.WithGroup("input").Info("login", "email", "ana@example.com", "Password", "hunter22", "token", "eyJ...")

	out := buf.String()
	assert.NotContains(t, out, "hunter22")
	assert.NotContains(t, out, "eyJ...")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, `"env":"develop"`)
}
