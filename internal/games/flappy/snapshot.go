package flappy

import (
	"time"

	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

// ObstacleState is the drawable state of one pool slot.
type ObstacleState struct {
	Position core.Vec2
	Scoring  ScoringState
}

// Snapshot captures the complete simulation state for determinism tests
// and the headless runner.
type Snapshot struct {
	Tick      uint64
	Clock     time.Duration
	Phase     Phase
	Score     int
	Best      int
	Position  core.Vec2
	Velocity  core.Vec2
	CanJump   bool
	Obstacles []ObstacleState
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	obstacles := make([]ObstacleState, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = ObstacleState{Position: o.Position, Scoring: o.Scoring}
	}

	return Snapshot{
		Tick:      s.ticks,
		Clock:     s.clock,
		Phase:     s.phase,
		Score:     s.score.Current,
		Best:      s.score.Best,
		Position:  s.body.Position,
		Velocity:  s.body.Velocity,
		CanJump:   s.body.canJump,
		Obstacles: obstacles,
	}
}
