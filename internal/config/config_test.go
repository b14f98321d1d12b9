package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"walkabout/internal/logger"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	// Missing file yields defaults
	{
		cfg, err := Load(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	}

	// Partial file keeps defaults for absent fields
	{
		path := filepath.Join(dir, "partial.yaml")
		err := os.WriteFile(path, []byte(`
movement:
  bound: 12
look:
  sensitivity: 0.005
scene:
  border_color: 0xff0000
`), 0644)
		require.NoError(t, err)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, float32(12), cfg.Movement.Bound)
		require.Equal(t, float32(25), cfg.Movement.Acceleration)
		require.Equal(t, float32(0.005), cfg.Look.Sensitivity)
		require.Equal(t, uint32(0xff0000), cfg.Scene.BorderColor)
		require.Equal(t, Default().Keys, cfg.Keys)
	}

	// Malformed YAML
	{
		path := filepath.Join(dir, "broken.yaml")
		err := os.WriteFile(path, []byte("movement: [1, 2"), 0644)
		require.NoError(t, err)
		_, err = Load(path)
		require.Error(t, err)
	}

	// Well-formed but invalid
	{
		path := filepath.Join(dir, "invalid.yaml")
		err := os.WriteFile(path, []byte("movement:\n  bound: -1\n"), 0644)
		require.NoError(t, err)
		_, err = Load(path)
		require.ErrorContains(t, err, "bound")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "walkabout.yaml")
	cfg := Default()
	cfg.Window.Fullscreen = true
	cfg.Texture.Seed = 42

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestDefaultLogFile(t *testing.T) {
	require.Equal(t, logger.DefaultFilePath, Default().Log.File)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cases := map[string]func(*Config){
		"window":  func(c *Config) { c.Window.Height = 0 },
		"fovy":    func(c *Config) { c.Camera.Fovy = 180 },
		"near":    func(c *Config) { c.Camera.Near = 0 },
		"far":     func(c *Config) { c.Camera.Far = c.Camera.Near },
		"damping": func(c *Config) { c.Movement.Damping = -1 },
		"texture": func(c *Config) { c.Texture.Size = 0 },
		"repeat":  func(c *Config) { c.Texture.Repeat = 0 },
		"columns": func(c *Config) { c.Scene.Columns = -3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
