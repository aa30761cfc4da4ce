package flappy

import (
	"math/rand"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

// GapTracker produces the vertical gap offset for a recycled obstacle.
// It is the only source of nondeterminism in the simulation.
type GapTracker interface {
	NextOffset() float64
}

// NewGapTracker returns FixedGaps when the config pins a sequence,
// otherwise RandomGaps seeded with seed.
func NewGapTracker(seed int64, cfg config.Gaps) GapTracker {
	if len(cfg.Sequence) > 0 {
		return NewFixedGaps(cfg.Sequence...)
	}
	return NewRandomGaps(seed, cfg)
}

// RandomGaps is a bounded random walk. Each offset differs from the previous
// one by at most MaxShift and the running total stays within
// [MinOffset, MaxOffset], so consecutive gaps remain reachable.
type RandomGaps struct {
	rng     *rand.Rand
	cfg     config.Gaps
	current float64
}

// NewRandomGaps creates a random walk starting at the middle of the band.
func NewRandomGaps(seed int64, cfg config.Gaps) *RandomGaps {
	return &RandomGaps{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		current: (cfg.MinOffset + cfg.MaxOffset) / 2,
	}
}

// NextOffset draws the next offset.
func (g *RandomGaps) NextOffset() float64 {
	delta := (g.rng.Float64()*2 - 1) * g.cfg.MaxShift
	g.current = core.ClampF(g.current+delta, g.cfg.MinOffset, g.cfg.MaxOffset)
	return g.current
}

// FixedGaps replays a fixed sequence of offsets, wrapping around at the end.
type FixedGaps struct {
	offsets []float64
	next    int
}

// NewFixedGaps creates a tracker over offsets. With no offsets it always returns 0.
func NewFixedGaps(offsets ...float64) *FixedGaps {
	return &FixedGaps{offsets: append([]float64(nil), offsets...)}
}

// NextOffset returns the next offset in the sequence.
func (g *FixedGaps) NextOffset() float64 {
	if len(g.offsets) == 0 {
		return 0
	}
	v := g.offsets[g.next]
	g.next = (g.next + 1) % len(g.offsets)
	return v
}
