package replay

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/snake"
)

// Frame records the state after one tick.
type Frame struct {
	Tick     int             `yaml:"tick"`
	Request  snake.Direction `yaml:"request"`
	Grew     bool            `yaml:"grew,omitempty"`
	Collided bool            `yaml:"collided,omitempty"`
	OnTail   bool            `yaml:"on_tail,omitempty"` // Head moved into the cell the tail vacated
	State    snake.Snapshot  `yaml:"state"`
}

// Result is the outcome of a replay.
type Result struct {
	Script        string         `yaml:"script"`
	Field         core.Field     `yaml:"field"`
	Frames        []Frame        `yaml:"frames"`
	Collided      bool           `yaml:"collided"`
	CollisionTick int            `yaml:"collision_tick,omitempty"` // 1-based; 0 if none
	Final         snake.Snapshot `yaml:"final"`
}

// Runner is a headless host loop. It applies the host side of the snake
// contract: guard the heading, check the next cell for self collision, move,
// then restore the tail when food was eaten.
type Runner struct {
	Logger          *log.Logger
	Field           core.Field
	StopOnCollision bool
}

// NewRunner creates a runner for the given field.
func NewRunner(logger *log.Logger, field core.Field, stopOnCollision bool) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger:          logger,
		Field:           field,
		StopOnCollision: stopOnCollision,
	}
}

// Run replays script against s. It returns ctx.Err() if the context is
// cancelled between ticks, along with the frames recorded so far.
func (r *Runner) Run(ctx context.Context, s *snake.Snake, script Script) (Result, error) {
	if err := r.Field.Validate(); err != nil {
		return Result{}, err
	}
	if err := script.Validate(); err != nil {
		return Result{}, err
	}

	ticks := script.Ticks()
	res := Result{
		Script: script.Name,
		Field:  r.Field,
		Frames: make([]Frame, 0, len(ticks)),
	}
	r.Logger.Info("replay started", "script", script.Name, "ticks", len(ticks),
		"field", r.Field, "head", s.Head())

	for i, step := range ticks {
		if err := ctx.Err(); err != nil {
			res.Final = s.Snapshot()
			return res, err
		}

		tick := i + 1
		req := r.guard(s, step.Dir)
		frame := Frame{Tick: tick, Request: req}

		next := s.NextHead(req, r.Field.W, r.Field.H)
		overlaps := s.OverlapsTailAt(next)
		frame.OnTail = !overlaps && s.Occupies(next)
		if overlaps {
			frame.Collided = true
			if !res.Collided {
				res.Collided = true
				res.CollisionTick = tick
			}
			r.Logger.Warn("self collision", "tick", tick, "cell", next)
			if r.StopOnCollision {
				frame.State = s.Snapshot()
				res.Frames = append(res.Frames, frame)
				break
			}
		}

		s.Advance(req, r.Field.W, r.Field.H)
		if step.Grow {
			s.RestoreTail()
			frame.Grew = true
		}

		frame.State = s.Snapshot()
		res.Frames = append(res.Frames, frame)
		r.Logger.Debug("tick", "n", tick, "head", s.Head(), "dir", s.Direction(), "len", s.Len())
	}

	res.Final = s.Snapshot()
	r.Logger.Info("replay finished", "script", script.Name, "frames", len(res.Frames),
		"len", res.Final.Len, "collided", res.Collided)
	return res, nil
}

// guard drops a reversal request when the snake leaves the check to its caller.
func (r *Runner) guard(s *snake.Snake, req snake.Direction) snake.Direction {
	if !s.GuardsReversal() && req != snake.DirNone && s.Direction().Opposite() == req {
		r.Logger.Debug("reversal suppressed", "heading", s.Direction(), "request", req)
		return snake.DirNone
	}
	return req
}
