package flappy

import "time"

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventBegan    EventKind = iota // PreGame -> Active
	EventScored                    // an obstacle pass counted
	EventCollided                  // Active -> Terminated
)

func (k EventKind) String() string {
	switch k {
	case EventBegan:
		return "began"
	case EventScored:
		return "scored"
	case EventCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// GroundContact is the Obstacle index reported by a collision with the ground.
const GroundContact = -1

// Event is emitted by Step for audio and UI collaborators.
type Event struct {
	Kind     EventKind
	At       time.Duration // simulation clock when the event happened
	Obstacle int           // pool index for scored/collided, GroundContact for the ground
	Score    int           // current score after the event
}

// Score holds the current and best counts. Best survives Reset.
type Score struct {
	Current int
	Best    int
}

func (s *Score) add() {
	s.Current++
	s.Best = max(s.Best, s.Current)
}
