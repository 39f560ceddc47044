package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// Snapshot captures the observable snake state for determinism testing and replay.
type Snapshot struct {
	Head        core.Point   `yaml:"head"`
	Dir         Direction    `yaml:"dir"`
	Len         int          `yaml:"len"`
	Body        []core.Point `yaml:"body,flow"`
	PendingTail bool         `yaml:"pending_tail"`
}

// Snapshot returns a copy of the current state.
func (s *Snake) Snapshot() Snapshot {
	return Snapshot{
		Head:        s.Head(),
		Dir:         s.dir,
		Len:         len(s.body),
		Body:        s.Body(),
		PendingTail: s.hasPending,
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Head != b.Head || a.Dir != b.Dir || a.Len != b.Len || a.PendingTail != b.PendingTail {
		return false
	}
	if len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Body {
		if a.Body[i] != b.Body[i] {
			return false
		}
	}
	return true
}

// DebugState returns a string representation of the snake state.
func (s *Snake) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", len(s.body), s.dir))
	b.WriteString(fmt.Sprintf("Head: %v, Tail: %v\n", s.Head(), s.Tail()))
	if s.hasPending {
		b.WriteString(fmt.Sprintf("Pending tail: %v\n", s.pendingTail))
	}
	return b.String()
}
