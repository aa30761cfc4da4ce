package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in configuration. It mirrors defaults/flappy.yaml
// and is the base every loaded file is decoded over.
func Default() Flappy {
	return Flappy{
		Field: Field{
			Width:  200,
			Height: 150,
		},
		Physics: Physics{
			Gravity:          0.20,
			JumpVelocity:     2.5,
			JumpAcceleration: 0.20,
			ScrollSpeed:      1.0,
			FrameRate:        60,
			MaxStep:          3,
		},
		Player: Player{
			X:              40,
			Y:              -16,
			Width:          17,
			Height:         12,
			ScreenTop:      -16,
			GroundY:        135,
			AutoJumpHeight: 600.0 / 8.0,
		},
		Obstacles: Obstacles{
			Count:     4,
			FirstX:    200,
			Spacing:   64,
			Width:     26,
			Length:    160,
			GapHeight: 48,
			BaseY:     50,
			ScoreLine: 20,
		},
		Gaps: Gaps{
			MinOffset: -30,
			MaxOffset: 30,
			MaxShift:  25,
		},
		Session: Session{
			RestartAfter: time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
