package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunkazanli9/beontrack/internal/geometry"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Journey.StepsPerWorkout)
	assert.Equal(t, geometry.DefaultParams(), cfg.Path)
	assert.Equal(t, StoreJSON, cfg.Storage.Kind)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	content := `
journey:
  stepsPerWorkout: 25
  notifications: true
path:
  curveAmplitude: 4.5
storage:
  kind: sqlite
  dataDir: /tmp/beontrack-data
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.Journey.StepsPerWorkout)
	assert.True(t, cfg.Journey.Notifications)
	assert.Equal(t, 3.0, cfg.Journey.AvatarSpeed, "unset values keep their default")
	assert.Equal(t, 4.5, cfg.Path.CurveAmplitude)
	assert.Equal(t, 5.0, cfg.Path.SegmentLength)
	assert.Equal(t, StoreSQLite, cfg.Storage.Kind)
	assert.Equal(t, "/tmp/beontrack-data", cfg.Storage.DataDir)
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  dataDir: ~/journey\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "journey"), cfg.Storage.DataDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("journey: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero steps", func(c *Config) { c.Journey.StepsPerWorkout = 0 }, true},
		{"zero segment length", func(c *Config) { c.Path.SegmentLength = 0 }, true},
		{"negative lookahead", func(c *Config) { c.Path.Lookahead = -1 }, true},
		{"zero lookahead", func(c *Config) { c.Path.Lookahead = 0 }, false},
		{"unknown store", func(c *Config) { c.Storage.Kind = "postgres" }, true},
		{"empty data dir", func(c *Config) { c.Storage.DataDir = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFilename)
	cfg := Default()
	cfg.Journey.StepsPerWorkout = 80
	cfg.Storage.DataDir = t.TempDir()

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
