package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis/internal/config"
	"sortvis/pkg/driver"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Array.Length)
	assert.Equal(t, 5, cfg.Array.Min)
	assert.Equal(t, 100, cfg.Array.Max)
	assert.Equal(t, 400*time.Millisecond, cfg.Playback.Slow)
	assert.Equal(t, 80*time.Millisecond, cfg.Playback.Fast)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoad_OverridesOnTopOfDefaults(t *testing.T) {
	path := writeConfig(t, `
algorithm: quick
array:
  length: 64
playback:
  slow: 1s
server:
  port: 9090
redis:
  address: localhost:6379
  ttl: 24h
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "quick", cfg.Algorithm)
	assert.Equal(t, 64, cfg.Array.Length)
	assert.Equal(t, 5, cfg.Array.Min, "untouched keys keep their defaults")
	assert.Equal(t, time.Second, cfg.Playback.Slow)
	assert.Equal(t, 80*time.Millisecond, cfg.Playback.Fast)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
}

func TestLoad_InvalidLength(t *testing.T) {
	path := writeConfig(t, "array:\n  length: -4\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, driver.ErrInvalidArrayLength)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "array: [unterminated\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestDriver_MapsFields(t *testing.T) {
	cfg := config.Default()
	cfg.Array.Length = 10
	cfg.Array.Min = 2
	cfg.Array.Max = 20

	d := cfg.Driver()
	assert.Equal(t, 10, d.Length)
	assert.Equal(t, 2, d.MinValue)
	assert.Equal(t, 20, d.MaxValue)
	assert.Equal(t, cfg.Playback.Slow, d.SlowInterval)
	assert.Equal(t, cfg.Playback.Fast, d.FastInterval)
}
