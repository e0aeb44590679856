package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2.0, cfg.BasePxPerDay)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 1.0, cfg.Viewport.Zoom)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`base_px_per_day: 5
day_first: true
output: json
viewport:
  width: 1920
  zoom: 0.5
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.BasePxPerDay)
	assert.True(t, cfg.DayFirst)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 1920.0, cfg.Viewport.Width)
	assert.Equal(t, 0.5, cfg.Viewport.Zoom)
	// Untouched keys keep defaults.
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadSanitizesDegenerateValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`base_px_per_day: -1
viewport:
  zoom: 0
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.BasePxPerDay)
	assert.Equal(t, 1.0, cfg.Viewport.Zoom)
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
