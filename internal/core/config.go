package core

// RuntimeConfig contains the field and spawn parameters a host passes to the
// snake model at the start of a session.
type RuntimeConfig struct {
	FieldW  int // Field width in cells
	FieldH  int // Field height in cells
	OriginX int // Tail cell of the initial body
	OriginY int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:  20,
		FieldH:  20,
		OriginX: 5,
		OriginY: 5,
	}
}

// Field returns the toroidal field described by the config.
func (c RuntimeConfig) Field() (Field, error) {
	return NewField(c.FieldW, c.FieldH)
}

// Origin returns the spawn origin as a point.
func (c RuntimeConfig) Origin() Point {
	return Point{X: c.OriginX, Y: c.OriginY}
}
