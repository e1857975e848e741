// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Tether    TetherConfig    `yaml:"tether"`
	Level     LevelConfig     `yaml:"level"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds the movement tuning applied on spawn and restart.
type PhysicsConfig struct {
	TickRate   float64 `yaml:"tick_rate"`   // simulation ticks per second
	RotRate    float64 `yaml:"rot_rate"`    // radians per tick
	Thrust     float64 `yaml:"thrust"`      // velocity added per held tick
	HalfExtent float64 `yaml:"half_extent"` // collision box half width/height
}

// TetherConfig holds grapple parameters.
type TetherConfig struct {
	Range float64 `yaml:"range"` // max trace distance in world units
}

// LevelConfig selects the map and where the body spawns in it.
type LevelConfig struct {
	Path     string  `yaml:"path"` // empty = embedded intro level
	TileSize float64 `yaml:"tile_size"`
	SpawnX   float64 `yaml:"spawn_x"`
	SpawnY   float64 `yaml:"spawn_y"`
}

// CameraConfig holds the follow-camera settings. Mode is one of "lock",
// "smooth" or "deadzone".
type CameraConfig struct {
	Mode      string  `yaml:"mode"`
	Smoothing float64 `yaml:"smoothing"` // per-frame lerp factor for smooth mode
	DeadzoneW float64 `yaml:"deadzone_w"`
	DeadzoneH float64 `yaml:"deadzone_h"`
}

// TelemetryConfig holds run-recording settings.
type TelemetryConfig struct {
	LogRuns bool `yaml:"log_runs"` // emit slog events per finished run
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("physics.tick_rate must be positive, got %v", c.Physics.TickRate)
	}
	if c.Physics.HalfExtent <= 0 {
		return fmt.Errorf("physics.half_extent must be positive, got %v", c.Physics.HalfExtent)
	}
	if c.Level.TileSize <= 0 {
		return fmt.Errorf("level.tile_size must be positive, got %v", c.Level.TileSize)
	}
	switch c.Camera.Mode {
	case "lock", "smooth", "deadzone":
	default:
		return fmt.Errorf("camera.mode %q is not one of lock, smooth, deadzone", c.Camera.Mode)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
