package flappy

import (
	"fmt"
	"time"
)

// PhaseKind enumerates the top-level session states.
type PhaseKind int

const (
	PreGame PhaseKind = iota
	Active
	Terminated
)

func (k PhaseKind) String() string {
	switch k {
	case PreGame:
		return "pre-game"
	case Active:
		return "active"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Phase is the session state. At is only meaningful when Kind is Terminated
// and holds the simulation clock at the moment of termination.
type Phase struct {
	Kind PhaseKind
	At   time.Duration
}

func (p Phase) String() string {
	if p.Kind == Terminated {
		return fmt.Sprintf("%s@%s", p.Kind, p.At)
	}
	return p.Kind.String()
}

// IsPlaying reports whether the phase is Active.
func (p Phase) IsPlaying() bool {
	return p.Kind == Active
}

// Begin moves PreGame to Active. Any other phase is returned unchanged with ok=false.
func (p Phase) Begin() (next Phase, ok bool) {
	if p.Kind != PreGame {
		return p, false
	}
	return Phase{Kind: Active}, true
}

// Terminate moves Active to Terminated at the given time.
// Any other phase is returned unchanged with ok=false.
func (p Phase) Terminate(at time.Duration) (next Phase, ok bool) {
	if p.Kind != Active {
		return p, false
	}
	return Phase{Kind: Terminated, At: at}, true
}
