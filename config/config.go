// Package config loads and validates the YAML configuration of a character, its stamina
// pool, the engine tick loop and logging.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"gopkg.in/yaml.v3"
)

// ErrOutOfRange is wrapped by every range violation reported from Validate.
var ErrOutOfRange = errors.New("value out of range")

// Config is the root of the configuration file.
type Config struct {
	Character CharacterConfig `yaml:"character"`
	Stamina   StaminaConfig   `yaml:"stamina"`
	Engine    EngineConfig    `yaml:"engine"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SpeedConfig is a speed profile: target speed and the acceleration used to reach it.
type SpeedConfig struct {
	Speed        float32 `yaml:"speed"`
	Acceleration float32 `yaml:"acceleration"`
}

// CharacterConfig holds the static per-character controller settings.
type CharacterConfig struct {
	Walking SpeedConfig `yaml:"walking"`
	Running SpeedConfig `yaml:"running"`
	// RunKey is a key name understood by common.ParseKey, e.g. "left_shift".
	RunKey string `yaml:"run_key"`

	// RotationSpeed is the fixed angular step per tick in degrees; 0 snaps.
	RotationSpeed float32 `yaml:"rotation_speed"`
	// MaxVerticalAngle is the symmetric pitch limit in degrees.
	MaxVerticalAngle float32 `yaml:"max_vertical_angle"`
	// SmoothRotation is the orientation blend rate; 0 disables smoothing.
	SmoothRotation         float32 `yaml:"smooth_rotation"`
	DeadRotationMultiplier float32 `yaml:"dead_rotation_multiplier"`
	MouseSensitivity       float32 `yaml:"mouse_sensitivity"`
	// WrapAt is the viewport margin that triggers a pointer re-center.
	WrapAt float32 `yaml:"wrap_at"`

	FeetRadius     float32 `yaml:"feet_radius"`
	WalkableLayers []int   `yaml:"walkable_layers"`
}

// StaminaConfig configures the optional stamina pool.
type StaminaConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Max           float32 `yaml:"max"`
	RunCost       float32 `yaml:"run_cost"`
	WalkRegen     float32 `yaml:"walk_regen"`
	RestRegen     float32 `yaml:"rest_regen"`
	RecoveryLevel float32 `yaml:"recovery_level"`
}

// EngineConfig configures the fixed-rate tick loop.
type EngineConfig struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
	Workers   int     `yaml:"workers"`
	// SensitivityMultiplier seeds the global mouse sensitivity multiplier.
	SensitivityMultiplier float32 `yaml:"sensitivity_multiplier"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used for any field missing from a file.
//
// Returns:
//   - *Config: a fully populated default configuration
func Default() *Config {
	return &Config{
		Character: CharacterConfig{
			Walking:                SpeedConfig{Speed: 5, Acceleration: 25},
			Running:                SpeedConfig{Speed: 9, Acceleration: 30},
			RunKey:                 "left_shift",
			RotationSpeed:          0,
			MaxVerticalAngle:       80,
			SmoothRotation:         0,
			DeadRotationMultiplier: 0.5,
			MouseSensitivity:       1,
			WrapAt:                 0.05,
			FeetRadius:             0.3,
			WalkableLayers:         []int{0},
		},
		Stamina: StaminaConfig{
			Enabled:       true,
			Max:           100,
			RunCost:       0.5,
			WalkRegen:     0.1,
			RestRegen:     0.25,
			RecoveryLevel: 25,
		},
		Engine: EngineConfig{
			TickRate:              50,
			Workers:               1,
			SensitivityMultiplier: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or fails validation
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes over the defaults and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if decoding or validation fails
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunKeyCode resolves the configured run key name.
//
// Returns:
//   - uint32: the key code
//   - error: error if the key name is unknown
func (c CharacterConfig) RunKeyCode() (uint32, error) {
	return common.ParseKey(c.RunKey)
}

// Validate checks every range constraint and reports all violations at once.
//
// Returns:
//   - error: nil, or the joined violations each wrapping ErrOutOfRange
func (c *Config) Validate() error {
	var errs []error
	atLeast := func(name string, v, lo float32) {
		if v < lo {
			errs = append(errs, fmt.Errorf("%s = %v, want >= %v: %w", name, v, lo, ErrOutOfRange))
		}
	}
	within := func(name string, v, lo, hi float32) {
		if v < lo || v > hi {
			errs = append(errs, fmt.Errorf("%s = %v, want [%v, %v]: %w", name, v, lo, hi, ErrOutOfRange))
		}
	}

	ch := c.Character
	atLeast("character.walking.speed", ch.Walking.Speed, 1)
	atLeast("character.walking.acceleration", ch.Walking.Acceleration, 1)
	atLeast("character.running.speed", ch.Running.Speed, 1)
	atLeast("character.running.acceleration", ch.Running.Acceleration, 1)
	atLeast("character.rotation_speed", ch.RotationSpeed, 0)
	within("character.max_vertical_angle", ch.MaxVerticalAngle, 0, 180)
	atLeast("character.smooth_rotation", ch.SmoothRotation, 0)
	within("character.dead_rotation_multiplier", ch.DeadRotationMultiplier, 0, 1)
	atLeast("character.mouse_sensitivity", ch.MouseSensitivity, 0.01)
	within("character.wrap_at", ch.WrapAt, 0, 0.5)
	within("character.feet_radius", ch.FeetRadius, 0.01, 10)
	for _, l := range ch.WalkableLayers {
		if l < 0 || l > 31 {
			errs = append(errs, fmt.Errorf("character.walkable_layers contains %d, want [0, 31]: %w", l, ErrOutOfRange))
		}
	}
	if _, err := ch.RunKeyCode(); err != nil {
		errs = append(errs, fmt.Errorf("character.run_key: %w", err))
	}

	if c.Stamina.Enabled {
		atLeast("stamina.max", c.Stamina.Max, 0.01)
		atLeast("stamina.run_cost", c.Stamina.RunCost, 0)
		atLeast("stamina.walk_regen", c.Stamina.WalkRegen, 0)
		atLeast("stamina.rest_regen", c.Stamina.RestRegen, 0)
		atLeast("stamina.recovery_level", c.Stamina.RecoveryLevel, 0)
	}

	if c.Engine.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("engine.tick_rate = %v, want > 0: %w", c.Engine.TickRate, ErrOutOfRange))
	}
	if c.Engine.Workers < 1 {
		errs = append(errs, fmt.Errorf("engine.workers = %d, want >= 1: %w", c.Engine.Workers, ErrOutOfRange))
	}
	atLeast("engine.sensitivity_multiplier", c.Engine.SensitivityMultiplier, 0)

	return errors.Join(errs...)
}
