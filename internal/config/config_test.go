package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Graph.RowWidth)
	assert.Equal(t, 80, cfg.Graph.StrongAbove)
	assert.Equal(t, 40, cfg.Graph.ModerateAbove)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero row width", mutate: func(c *Config) { c.Graph.RowWidth = 0 }},
		{name: "negative cell height", mutate: func(c *Config) { c.Graph.CellHeight = -1 }},
		{name: "thresholds inverted", mutate: func(c *Config) { c.Graph.ModerateAbove = 90 }},
		{name: "threshold out of range", mutate: func(c *Config) { c.Graph.StrongAbove = 150 }},
		{name: "bogus zone", mutate: func(c *Config) { c.Timeline.Zone = "Mars/Olympus" }},
		{name: "bogus log level", mutate: func(c *Config) { c.Logging.Level = "loud" }},
		{name: "zero tag limit", mutate: func(c *Config) { c.Limits.MaxTagLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  rowWidth: 8\nlogging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Graph.RowWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields keep their defaults
	assert.Equal(t, 80, cfg.Graph.StrongAbove)
	assert.Contains(t, cfg.LoadedFrom, path)
}

func TestLoad_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"graph":{"cellWidth":300}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Graph.CellWidth)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  rowWidth: 8\n"), 0o644))

	t.Setenv("CANVAS_GRAPH_ROW_WIDTH", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Graph.RowWidth)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  rowWidth: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestTimelineZone(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "UTC", cfg.TimelineZone().String())

	cfg.Timeline.Zone = "America/New_York"
	assert.Equal(t, "America/New_York", cfg.TimelineZone().String())
}
