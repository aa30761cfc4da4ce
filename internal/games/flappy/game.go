// Package flappy implements the simulation core of an obstacle-dodging game:
// a single body under gravity flaps through a recycled stream of pipes.
// The package is pure: time and input come in through Step, positions and
// events go out through accessors and StepResult.
package flappy

import (
	"time"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
)

// Input is what the clock/input adapter supplies each tick.
type Input struct {
	Elapsed time.Duration // real time since the previous tick
	Jump    bool          // jump input currently held
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Phase  Phase
	Score  Score
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Simulation owns all gameplay state and advances it one tick at a time.
// It is not safe for concurrent use.
type Simulation struct {
	cfg       config.Flappy
	frame     time.Duration // one reference frame
	gaps      GapTracker
	body      Body
	obstacles []Obstacle
	phase     Phase
	score     Score
	clock     time.Duration
	ticks     uint64
}

// New creates a simulation in PreGame. cfg must be valid (see config.Flappy.Validate).
func New(cfg config.Flappy, gaps GapTracker) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		frame: time.Duration(float64(time.Second) / cfg.Physics.FrameRate),
		gaps:  gaps,
	}
	s.Reset()
	return s
}

// Reset starts a fresh session: new body, new obstacle pool, score.Current
// back to zero and phase back to PreGame. The best score is kept.
func (s *Simulation) Reset() {
	s.body = NewBody(s.cfg.Physics, s.cfg.Player)
	s.obstacles = NewPool(s.cfg.Obstacles, s.gaps)
	s.phase = Phase{Kind: PreGame}
	s.score.Current = 0
	s.clock = 0
	s.ticks = 0
}

// Frame returns the duration of one reference frame. Physics constants are
// expressed per frame, so an Input.Elapsed of Frame() advances exactly one.
func (s *Simulation) Frame() time.Duration {
	return s.frame
}

// Step advances the simulation by in.Elapsed. A non-positive Elapsed is a
// no-op tick.
func (s *Simulation) Step(in Input) StepResult {
	if in.Elapsed <= 0 {
		return StepResult{Phase: s.phase, Score: s.score}
	}

	s.ticks++
	s.clock += in.Elapsed
	dt := min(float64(in.Elapsed)/float64(s.frame), s.cfg.Physics.MaxStep)

	var events []Event

	if s.phase.Kind != Terminated {
		motion := s.body.Advance(dt, in.Jump, s.phase.Kind == PreGame)
		if motion.Jumped {
			if next, ok := s.phase.Begin(); ok {
				s.phase = next
				events = append(events, Event{Kind: EventBegan, At: s.clock})
			}
		}
	}

	if s.phase.Kind != PreGame {
		dx := s.cfg.Physics.ScrollSpeed * dt
		for i := range s.obstacles {
			s.obstacles[i].Advance(dx, s.gaps)
		}
	}

	if s.phase.IsPlaying() {
		events = s.resolve(events)
	}

	return StepResult{Phase: s.phase, Score: s.score, Events: events}
}

// resolve runs scoring and collisions. Each obstacle scores before the
// collision check, so a pass crossing the line on the fatal tick still
// counts. Termination happens at most once: after it, SetScored refuses
// and no further hits are checked.
func (s *Simulation) resolve(events []Event) []Event {
	bounds := s.body.Bounds()
	grounded := HitsGround(s.body.Position, s.cfg.Player.GroundY)

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.SetScored(s.phase) {
			s.score.add()
			events = append(events, Event{Kind: EventScored, At: s.clock, Obstacle: i, Score: s.score.Current})
		}
		if !s.phase.IsPlaying() {
			continue
		}
		switch {
		case hitsObstacle(bounds, o):
			events = s.terminate(events, i)
		case grounded:
			events = s.terminate(events, GroundContact)
		}
	}

	if grounded {
		events = s.terminate(events, GroundContact) // no-op unless the pool is empty
	}
	return events
}

func (s *Simulation) terminate(events []Event, obstacle int) []Event {
	next, ok := s.phase.Terminate(s.clock)
	if !ok {
		return events
	}
	s.phase = next
	return append(events, Event{Kind: EventCollided, At: s.clock, Obstacle: obstacle, Score: s.score.Current})
}

// Phase returns the current session phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Score returns the current and best scores.
func (s *Simulation) Score() Score {
	return s.score
}

// Body returns a copy of the controlled entity.
func (s *Simulation) Body() Body {
	return s.body
}

// Obstacles returns a copy of the obstacle pool in left-to-right spawn order.
func (s *Simulation) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Clock returns the simulated time of the current session.
func (s *Simulation) Clock() time.Duration {
	return s.clock
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Flappy {
	return s.cfg
}

// CanRestart reports whether the session has been terminated for at least
// the configured restart delay. The clock keeps running while terminated.
func (s *Simulation) CanRestart() bool {
	return s.phase.Kind == Terminated && s.clock-s.phase.At >= s.cfg.Session.RestartAfter
}
