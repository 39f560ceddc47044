package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:  20,
			Height: 20,
		},
		Spawn: SpawnConfig{
			X: 5,
			Y: 5,
		},
		Rules: RulesConfig{
			ReversalGuard:   true,
			StopOnCollision: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
