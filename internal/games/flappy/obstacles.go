package flappy

import (
	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

// ScoringState is the per-obstacle scoring eligibility.
type ScoringState int

const (
	Dormant      ScoringState = iota // not yet placed in play
	ReadyToScore                     // the next pass will count
	Scored                           // this pass has counted
)

func (s ScoringState) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case ReadyToScore:
		return "ready"
	case Scored:
		return "scored"
	default:
		return "unknown"
	}
}

// Obstacle is a vertical pipe pair with a gap. Position is the left edge of
// the pair and the top of the gap.
type Obstacle struct {
	Position     core.Vec2
	JumpDistance float64 // Horizontal distance applied on recycle
	Scoring      ScoringState

	geom config.Obstacles
}

// NewObstacle creates a dormant obstacle with its gap top at y.
func NewObstacle(x, y float64, geom config.Obstacles) Obstacle {
	return Obstacle{
		Position:     core.Vec2{X: x, Y: y},
		JumpDistance: geom.JumpDistance(),
		Scoring:      Dormant,
		geom:         geom,
	}
}

// NewPool lays out the fixed obstacle pool left to right with fixed spacing.
// Every slot is armed for scoring and gets its gap offset from gaps.
func NewPool(geom config.Obstacles, gaps GapTracker) []Obstacle {
	pool := make([]Obstacle, geom.Count)
	for i := range pool {
		x := geom.FirstX + float64(i)*geom.Spacing
		pool[i] = NewObstacle(x, geom.BaseY+gaps.NextOffset(), geom)
		pool[i].Scoring = ReadyToScore
	}
	return pool
}

// RightEdge returns the x-coordinate of the obstacle's right edge.
func (o *Obstacle) RightEdge() float64 {
	return o.Position.X + o.geom.Width
}

// Advance scrolls the obstacle left by dx and recycles it once it has fully
// left the visible area. Returns true when the obstacle was recycled.
func (o *Obstacle) Advance(dx float64, gaps GapTracker) bool {
	o.Position.X -= dx
	if o.RightEdge() >= 0 {
		return false
	}
	o.recycle(gaps)
	return true
}

// recycle moves the obstacle past the rightmost slot of the pool's spacing
// pattern with a fresh gap offset and re-arms scoring.
func (o *Obstacle) recycle(gaps GapTracker) {
	o.Position.X += o.JumpDistance
	o.Position.Y = o.geom.BaseY + gaps.NextOffset()
	o.Scoring = ReadyToScore
}

// SetScored fires the ReadyToScore -> Scored transition when the obstacle
// has crossed the score line during active play. It returns true exactly
// once per pass; further calls return false until the obstacle is recycled.
func (o *Obstacle) SetScored(phase Phase) bool {
	if o.Position.X > o.geom.ScoreLine {
		return false
	}
	if o.Scoring != ReadyToScore || !phase.IsPlaying() {
		return false
	}
	o.Scoring = Scored
	return true
}

// Bounds returns the upper and lower pipe segments.
func (o *Obstacle) Bounds() [2]core.Rect {
	w, length := o.geom.Width, o.geom.Length
	return [2]core.Rect{
		core.NewRect(o.Position.X, o.Position.Y-length, w, length),
		core.NewRect(o.Position.X, o.Position.Y+o.geom.GapHeight, w, length),
	}
}
