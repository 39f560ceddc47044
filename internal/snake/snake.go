// Package snake models a grid snake moving on a toroidal field: its ordered
// body, its heading, the one-tick advance rule and the self-collision check.
//
// A Snake is not safe for concurrent use. The host loop owns it and drives it
// one tick at a time.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// ErrNoPendingTail is the panic value of RestoreTail when no tail segment is
// waiting to be restored.
var ErrNoPendingTail = errors.New("snake: no pending tail to restore")

// Options tunes snake construction.
type Options struct {
	// AllowReversal disables the internal opposite-heading guard. Callers
	// then must check Direction().Opposite() themselves before Advance.
	AllowReversal bool
}

// Snake is the player creature.
type Snake struct {
	body []core.Point // Head at index 0, tail last
	dir  Direction

	// Segment removed by the last Advance, kept so growth can be applied
	// after the move.
	pendingTail core.Point
	hasPending  bool

	allowReversal bool
}

// New creates a 3-segment snake heading right with its tail at (x, y).
func New(x, y int) *Snake {
	return NewWithOptions(x, y, Options{})
}

// NewWithOptions creates a snake like New with the given options.
func NewWithOptions(x, y int, opts Options) *Snake {
	return &Snake{
		body: []core.Point{
			{X: x + 2, Y: y}, // Head
			{X: x + 1, Y: y},
			{X: x, Y: y},
		},
		dir:           DirRight,
		allowReversal: opts.AllowReversal,
	}
}

// Head returns the head segment.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// GuardsReversal reports whether Advance ignores opposite-heading requests.
func (s *Snake) GuardsReversal() bool {
	return !s.allowReversal
}

// CanTurn reports whether d may be requested without reversing into the neck.
func (s *Snake) CanTurn(d Direction) bool {
	return d == DirNone || d != s.dir.Opposite()
}

// HasPendingTail reports whether RestoreTail may be called.
func (s *Snake) HasPendingTail() bool {
	return s.hasPending
}

// resolve returns the heading the next move will use for the request.
func (s *Snake) resolve(req Direction) Direction {
	if !req.Valid() {
		return s.dir
	}
	if !s.allowReversal && req == s.dir.Opposite() {
		// Existing momentum wins over a reversal.
		return s.dir
	}
	return req
}

// NextHead previews where the head lands on the next tick without mutating
// the snake. The request is resolved exactly as Advance would resolve it.
// Panics if width or height is not positive.
func (s *Snake) NextHead(req Direction, width, height int) core.Point {
	f := mustField(width, height)
	dx, dy := s.resolve(req).Delta()
	return f.Step(s.Head(), dx, dy)
}

// Advance moves the snake one cell. The body length is unchanged: the tail
// is removed and kept as the pending tail, and the new head is prepended.
// Panics if width or height is not positive.
func (s *Snake) Advance(req Direction, width, height int) {
	next := s.NextHead(req, width, height)
	s.dir = s.resolve(req)

	last := len(s.body) - 1
	s.pendingTail = s.body[last]
	s.hasPending = true

	// Shift in place; the backing array never shrinks.
	copy(s.body[1:], s.body[:last])
	s.body[0] = next
}

// RestoreTail re-appends the segment removed by the last Advance, growing
// the snake by one. The pending tail is consumed.
// Panics with ErrNoPendingTail if there is nothing to restore.
func (s *Snake) RestoreTail() {
	if !s.hasPending {
		panic(ErrNoPendingTail)
	}
	s.body = append(s.body, s.pendingTail)
	s.hasPending = false
}

// OverlapsTail reports whether (x, y) is occupied by any segment except the
// last one, which is about to be vacated.
func (s *Snake) OverlapsTail(x, y int) bool {
	return s.OverlapsTailAt(core.Point{X: x, Y: y})
}

// OverlapsTailAt is OverlapsTail for a point.
func (s *Snake) OverlapsTailAt(p core.Point) bool {
	for _, seg := range s.body[:len(s.body)-1] {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, tail included, sits on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

func mustField(width, height int) core.Field {
	f, err := core.NewField(width, height)
	if err != nil {
		panic(fmt.Errorf("snake: %w", err))
	}
	return f
}
