// Package core provides the geometry shared by the snake model and its hosts.
// It contains no external dependencies to keep game logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidField is returned (or panicked with) when a field has a
// non-positive width or height.
var ErrInvalidField = errors.New("invalid field dimensions")

// ErrInvalidSpawn is returned when the initial body would not fit the field.
var ErrInvalidSpawn = errors.New("invalid spawn origin")

// Point is a field-relative grid cell. Points are compared by value.
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy). The result is not wrapped.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Field is a toroidal playing field measured in grid cells.
// Moving past one edge re-enters at the opposite edge.
type Field struct {
	W, H int
}

// NewField creates a field, rejecting non-positive dimensions.
func NewField(w, h int) (Field, error) {
	f := Field{W: w, H: h}
	if err := f.Validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// MustField is like NewField but panics on invalid dimensions.
func MustField(w, h int) Field {
	f, err := NewField(w, h)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate reports whether both dimensions are positive.
func (f Field) Validate() error {
	if f.W <= 0 || f.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidField, f.W, f.H)
	}
	return nil
}

// CheckSpawn reports whether a 3-segment body with its tail at origin and
// its head two cells to the right lies inside the field without wrapping.
func (f Field) CheckSpawn(origin Point) error {
	if !f.Contains(origin) {
		return fmt.Errorf("%w: %v outside %dx%d field", ErrInvalidSpawn, origin, f.W, f.H)
	}
	if origin.X+2 >= f.W {
		return fmt.Errorf("%w: x=%d leaves no room for the head (width %d)", ErrInvalidSpawn, origin.X, f.W)
	}
	return nil
}

// Contains returns true if p lies inside the field without wrapping.
func (f Field) Contains(p Point) bool {
	return p.X >= 0 && p.X < f.W && p.Y >= 0 && p.Y < f.H
}

// Wrap maps any point onto the field.
// x = -1 becomes W-1, x = W becomes 0, and likewise for y.
func (f Field) Wrap(p Point) Point {
	return Point{X: wrap(p.X, f.W), Y: wrap(p.Y, f.H)}
}

// Step moves p by (dx, dy) and wraps the result onto the field.
func (f Field) Step(p Point, dx, dy int) Point {
	return f.Wrap(p.Add(dx, dy))
}

// Cells returns the number of cells in the field.
func (f Field) Cells() int {
	return f.W * f.H
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
