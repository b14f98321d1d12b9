package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"walkabout/internal/logger"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/walkabout.yaml"

// Window controls the host window.
type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
	MSAA       bool   `yaml:"msaa"`
}

// Camera places the yaw node and sets the projection. Fovy is in degrees.
type Camera struct {
	Fovy  float32    `yaml:"fovy"`
	Near  float32    `yaml:"near"`
	Far   float32    `yaml:"far"`
	Start [3]float32 `yaml:"start"`
}

// Movement tunes the movement integrator. Bound is independent of the wall geometry.
type Movement struct {
	Acceleration  float32 `yaml:"acceleration"`
	Damping       float32 `yaml:"damping"`
	Bound         float32 `yaml:"bound"`
	MaxFrameDelta float32 `yaml:"max_frame_delta"`
}

// Look tunes mouse look.
type Look struct {
	Sensitivity float32 `yaml:"sensitivity"`
}

// Keys lists key names per movement action (see input.KeyNames).
type Keys struct {
	Forward  []string `yaml:"forward"`
	Backward []string `yaml:"backward"`
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
}

// Texture configures the procedural stone texture.
type Texture struct {
	Size     int    `yaml:"size"`
	Speckles int    `yaml:"speckles"`
	Streaks  int    `yaml:"streaks"`
	Seed     uint64 `yaml:"seed"` // 0 = new pattern every run
	Repeat   int    `yaml:"repeat"`
}

// Lighting configures the ambient term and the orbiting directional light.
type Lighting struct {
	Ambient          uint32     `yaml:"ambient"`
	AmbientIntensity float32    `yaml:"ambient_intensity"`
	Sun              uint32     `yaml:"sun"`
	SunIntensity     float32    `yaml:"sun_intensity"`
	SunStart         [3]float32 `yaml:"sun_start"`
	OrbitRadius      float32    `yaml:"orbit_radius"`
	OrbitSpeed       float32    `yaml:"orbit_speed"` // radians per second
}

// Scene holds the geometry constants of the walkable area.
type Scene struct {
	Background    uint32  `yaml:"background"`
	PlatformSize  float32 `yaml:"platform_size"`
	PlatformColor uint32  `yaml:"platform_color"`
	BorderLength  float32 `yaml:"border_length"`
	BorderHeight  float32 `yaml:"border_height"`
	BorderThick   float32 `yaml:"border_thickness"`
	BorderOffset  float32 `yaml:"border_offset"`
	BorderColor   uint32  `yaml:"border_color"`
	Columns       int     `yaml:"columns"`
	ColumnRing    float32 `yaml:"column_ring"`
	ColumnWobble  float32 `yaml:"column_wobble"`
	ColumnHeight  float32 `yaml:"column_height"`
	ColumnTop     float32 `yaml:"column_top_radius"`
	ColumnBottom  float32 `yaml:"column_bottom_radius"`
	ColumnSides   int32   `yaml:"column_sides"`
	ColumnColor   uint32  `yaml:"column_color"`
}

// Debug sets the initial state of the debug overlays (F3 toggles them at runtime).
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowRig      bool `yaml:"show_rig"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the whole walkabout configuration. Persisted as YAML.
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Movement Movement `yaml:"movement"`
	Look     Look     `yaml:"look"`
	Keys     Keys     `yaml:"keys"`
	Texture  Texture  `yaml:"texture"`
	Lighting Lighting `yaml:"lighting"`
	Scene    Scene    `yaml:"scene"`
	Debug    Debug    `yaml:"debug"`
	Log      Log      `yaml:"log"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "walkabout",
			TargetFPS: 60,
			MSAA:      true,
		},
		Camera: Camera{
			Fovy:  75,
			Near:  0.1,
			Far:   100,
			Start: [3]float32{0, 1.6, 5},
		},
		Movement: Movement{
			Acceleration:  25,
			Damping:       5,
			Bound:         18.5,
			MaxFrameDelta: 0.1,
		},
		Look: Look{Sensitivity: 0.0022},
		Keys: Keys{
			Forward:  []string{"W", "Z", "UP"},
			Backward: []string{"S", "DOWN"},
			Left:     []string{"A", "Q", "LEFT"},
			Right:    []string{"D", "RIGHT"},
		},
		Texture: Texture{
			Size:     512,
			Speckles: 2500,
			Streaks:  20,
			Repeat:   6,
		},
		Lighting: Lighting{
			Ambient:          0x8899aa,
			AmbientIntensity: 0.6,
			Sun:              0xe8f1ff,
			SunIntensity:     0.9,
			SunStart:         [3]float32{10, 12, 5},
			OrbitRadius:      10,
			OrbitSpeed:       0.2,
		},
		Scene: Scene{
			Background:    0x0b111a,
			PlatformSize:  40,
			PlatformColor: 0xb7bec9,
			BorderLength:  41,
			BorderHeight:  0.6,
			BorderThick:   0.5,
			BorderOffset:  20,
			BorderColor:   0x303744,
			Columns:       12,
			ColumnRing:    12,
			ColumnWobble:  1.5,
			ColumnHeight:  3,
			ColumnTop:     0.35,
			ColumnBottom:  0.5,
			ColumnSides:   12,
			ColumnColor:   0x6d7a8c,
		},
		Log: Log{
			Level: "info",
			File:  logger.DefaultFilePath,
		},
	}
}

// Load reads the configuration at path on top of Default(). A missing file is not an error
// and yields the defaults; a malformed or invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180:
		return fmt.Errorf("camera fovy must be in (0, 180), got %g", c.Camera.Fovy)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got %g..%g", c.Camera.Near, c.Camera.Far)
	case c.Movement.Damping < 0:
		return fmt.Errorf("movement damping must not be negative, got %g", c.Movement.Damping)
	case c.Movement.Bound <= 0:
		return fmt.Errorf("movement bound must be positive, got %g", c.Movement.Bound)
	case c.Movement.MaxFrameDelta < 0:
		return fmt.Errorf("movement max_frame_delta must not be negative, got %g", c.Movement.MaxFrameDelta)
	case c.Texture.Size <= 0:
		return fmt.Errorf("texture size must be positive, got %d", c.Texture.Size)
	case c.Texture.Repeat <= 0:
		return fmt.Errorf("texture repeat must be positive, got %d", c.Texture.Repeat)
	case c.Scene.Columns < 0:
		return fmt.Errorf("scene columns must not be negative, got %d", c.Scene.Columns)
	}
	return nil
}
