// Package replay drives a snake through a scripted sequence of ticks, the way
// a game loop would, and records what happened on each tick.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/snake"
)

// ErrEmptyScript is returned when a script has no steps.
var ErrEmptyScript = errors.New("script has no steps")

// Step is one scripted input, applied Repeat times.
type Step struct {
	Dir    snake.Direction `yaml:"dir,omitempty"`    // Requested heading; none keeps the current one
	Grow   bool            `yaml:"grow,omitempty"`   // Food eaten: restore the tail after the move
	Repeat int             `yaml:"repeat,omitempty"` // <= 0 means once
}

// FieldSize overrides the configured field.
type FieldSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Origin overrides the configured spawn origin.
type Origin struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Script is a named tick sequence.
type Script struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Field       *FieldSize `yaml:"field,omitempty"`
	Spawn       *Origin    `yaml:"spawn,omitempty"`
	Steps       []Step     `yaml:"steps"`
}

// LoadScript reads and parses a YAML script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript parses a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks the overrides and that there is something to replay.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	if s.Field != nil {
		if _, err := core.NewField(s.Field.Width, s.Field.Height); err != nil {
			return fmt.Errorf("script %q: %w", s.Name, err)
		}
	}
	return nil
}

// Ticks expands repeats into one step per tick.
func (s Script) Ticks() []Step {
	var out []Step
	for _, st := range s.Steps {
		n := max(st.Repeat, 1)
		for i := 0; i < n; i++ {
			out = append(out, Step{Dir: st.Dir, Grow: st.Grow, Repeat: 1})
		}
	}
	return out
}

// Setup resolves the field and spawn origin, preferring the script's
// overrides to rt. The initial body must fit the field without wrapping.
func (s Script) Setup(rt core.RuntimeConfig) (core.Field, core.Point, error) {
	if s.Field != nil {
		rt.FieldW, rt.FieldH = s.Field.Width, s.Field.Height
	}
	if s.Spawn != nil {
		rt.OriginX, rt.OriginY = s.Spawn.X, s.Spawn.Y
	}
	f, err := rt.Field()
	if err != nil {
		return core.Field{}, core.Point{}, err
	}
	if err := f.CheckSpawn(rt.Origin()); err != nil {
		return core.Field{}, core.Point{}, fmt.Errorf("script %q: %w", s.Name, err)
	}
	return f, rt.Origin(), nil
}
