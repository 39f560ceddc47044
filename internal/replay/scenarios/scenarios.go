// Package scenarios registers the built-in replay scenarios.
package scenarios

import (
	"github.com/vovakirdan/torus-snake/internal/registry"
	"github.com/vovakirdan/torus-snake/internal/replay"
	"github.com/vovakirdan/torus-snake/internal/snake"
)

type builtin struct {
	id     string
	title  string
	script func() replay.Script
}

func (b builtin) ID() string            { return b.id }
func (b builtin) Title() string         { return b.title }
func (b builtin) Script() replay.Script { return b.script() }

func field10() *replay.FieldSize {
	return &replay.FieldSize{Width: 10, Height: 10}
}

func step(d snake.Direction) replay.Step {
	return replay.Step{Dir: d}
}

// Builtins lists the built-in scenarios in registration order.
var Builtins = []builtin{
	{
		id:    "wrap-right",
		title: "Cross the right edge and re-enter on the left",
		script: func() replay.Script {
			return replay.Script{
				Name:  "wrap-right",
				Field: field10(),
				Spawn: &replay.Origin{X: 5, Y: 5},
				Steps: []replay.Step{{Dir: snake.DirRight, Repeat: 3}},
			}
		},
	},
	{
		id:    "wrap-left",
		title: "Turn up, then cross the left edge",
		script: func() replay.Script {
			return replay.Script{
				Name:  "wrap-left",
				Field: field10(),
				Spawn: &replay.Origin{X: 5, Y: 5},
				Steps: []replay.Step{
					step(snake.DirUp),
					{Dir: snake.DirLeft, Repeat: 8},
				},
			}
		},
	},
	{
		id:    "wrap-up",
		title: "Cross the top edge and re-enter at the bottom",
		script: func() replay.Script {
			return replay.Script{
				Name:  "wrap-up",
				Field: field10(),
				Spawn: &replay.Origin{X: 2, Y: 0},
				Steps: []replay.Step{step(snake.DirUp)},
			}
		},
	},
	{
		id:    "wrap-down",
		title: "Cross the bottom edge and re-enter at the top",
		script: func() replay.Script {
			return replay.Script{
				Name:  "wrap-down",
				Field: field10(),
				Spawn: &replay.Origin{X: 2, Y: 9},
				Steps: []replay.Step{step(snake.DirDown)},
			}
		},
	},
	{
		id:    "grow",
		title: "Eat on three consecutive ticks, then coast",
		script: func() replay.Script {
			return replay.Script{
				Name:  "grow",
				Field: field10(),
				Spawn: &replay.Origin{X: 1, Y: 1},
				Steps: []replay.Step{
					{Grow: true, Repeat: 3},
					{Repeat: 2},
				},
			}
		},
	},
	{
		id:    "self-collision",
		title: "Grow to five segments and turn back into the body",
		script: func() replay.Script {
			return replay.Script{
				Name:  "self-collision",
				Field: field10(),
				Spawn: &replay.Origin{X: 1, Y: 5},
				Steps: []replay.Step{
					{Dir: snake.DirRight, Grow: true, Repeat: 2},
					step(snake.DirDown),
					step(snake.DirLeft),
					step(snake.DirUp),
				},
			}
		},
	},
	{
		id:    "reversal-guard",
		title: "Request the opposite heading; momentum wins",
		script: func() replay.Script {
			return replay.Script{
				Name:  "reversal-guard",
				Field: field10(),
				Spawn: &replay.Origin{X: 2, Y: 2},
				Steps: []replay.Step{
					step(snake.DirLeft),
					{Dir: snake.DirLeft, Repeat: 2},
				},
			}
		},
	},
	{
		id:    "tail-chase",
		title: "Circle a 2x2 square, stepping into the vacating tail",
		script: func() replay.Script {
			return replay.Script{
				Name:  "tail-chase",
				Field: field10(),
				Spawn: &replay.Origin{X: 0, Y: 0},
				Steps: []replay.Step{
					{Dir: snake.DirRight, Grow: true},
					step(snake.DirDown),
					step(snake.DirLeft),
					step(snake.DirUp),
					step(snake.DirRight),
					step(snake.DirDown),
					step(snake.DirLeft),
					step(snake.DirUp),
					step(snake.DirRight),
				},
			}
		},
	},
}

func init() {
	for _, b := range Builtins {
		b := b
		registry.Register(b.id, func() registry.Scenario {
			return b
		})
	}
}
