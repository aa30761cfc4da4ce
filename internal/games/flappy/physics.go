package flappy

import (
	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

// Body is the controlled entity: a point mass with a fixed-size hitbox.
type Body struct {
	Position     core.Vec2
	Velocity     core.Vec2
	Acceleration core.Vec2
	Gravity      bool

	canJump bool // cleared by a jump, restored once the input is released
	physics config.Physics
	player  config.Player
}

// Motion reports what Advance did to the body this tick.
type Motion struct {
	Jumped     bool // impulse caused by the jump input
	AutoJumped bool // impulse caused by the start screen bob
}

// NewBody creates a body at the configured spawn point with gravity enabled.
func NewBody(physics config.Physics, player config.Player) Body {
	return Body{
		Position: core.Vec2{X: player.X, Y: player.Y},
		Gravity:  true,
		canJump:  true,
		physics:  physics,
		player:   player,
	}
}

// CanJump reports whether the next jump input will produce an impulse.
func (b Body) CanJump() bool {
	return b.canJump
}

// Advance integrates the body over dt reference frames.
// attract enables the start screen auto-jump. A non-positive dt is a no-op.
func (b *Body) Advance(dt float64, jump, attract bool) Motion {
	var m Motion
	if dt <= 0 {
		return m
	}

	if b.Gravity {
		b.Acceleration = core.Vec2{Y: b.physics.Gravity}
	} else {
		b.Acceleration = core.Vec2{}
	}

	// One impulse per press: holding the input keeps canJump false.
	if !jump {
		b.canJump = true
	}
	if jump && b.canJump {
		b.jump()
		b.canJump = false
		m.Jumped = true
	}

	if attract && !m.Jumped && b.Position.Y > b.player.AutoJumpHeight {
		b.jump()
		m.AutoJumped = true
	}

	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	// The top clamp never touches velocity, so there is no bounce.
	if b.Position.Y < b.player.ScreenTop {
		b.Position.Y = b.player.ScreenTop
	}
	return m
}

// jump overrides gravity for this tick with a small upward acceleration
// and a fixed upward velocity.
func (b *Body) jump() {
	b.Acceleration = core.Vec2{Y: -b.physics.JumpAcceleration}
	b.Velocity = core.Vec2{Y: -b.physics.JumpVelocity}
}

// Bounds returns the body's hitbox.
func (b Body) Bounds() core.Rect {
	return core.RectAt(b.Position, b.player.Width, b.player.Height)
}
