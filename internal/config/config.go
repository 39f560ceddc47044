// Package config provides YAML-based configuration loading for the snake
// model and its replay host.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Field FieldConfig `yaml:"field"`
	Spawn SpawnConfig `yaml:"spawn"`
	Rules RulesConfig `yaml:"rules"`
	Log   LogConfig   `yaml:"log"`
}

// FieldConfig defines the toroidal field size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines the tail cell of the initial 3-segment body.
// The head spawns two cells to the right.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RulesConfig defines movement and host-loop policy.
type RulesConfig struct {
	ReversalGuard   bool `yaml:"reversal_guard"`    // Ignore opposite-heading requests inside Advance
	StopOnCollision bool `yaml:"stop_on_collision"` // Stop a replay at the first self collision
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the config describes a playable session.
func (c SnakeConfig) Validate() error {
	f := c.Bounds()
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	origin := core.Point{X: c.Spawn.X, Y: c.Spawn.Y}
	if err := f.CheckSpawn(origin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Log.Level != "" && !logLevels[c.Log.Level] {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Bounds returns the configured field. It may be invalid; see Validate.
func (c SnakeConfig) Bounds() core.Field {
	return core.Field{W: c.Field.Width, H: c.Field.Height}
}

// Runtime converts the config into the runtime parameters the host uses.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		FieldW:  c.Field.Width,
		FieldH:  c.Field.Height,
		OriginX: c.Spawn.X,
		OriginY: c.Spawn.Y,
	}
}
