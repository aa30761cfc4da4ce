package flappy

import (
	"testing"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

func newTestBody(y float64) Body {
	cfg := config.Default()
	b := NewBody(cfg.Physics, cfg.Player)
	b.Position.Y = y
	return b
}

func TestBodyGravityOneFrame(t *testing.T) {
	gravity := config.Default().Physics.Gravity
	b := newTestBody(50)

	m := b.Advance(1, false, false)

	if m.Jumped || m.AutoJumped {
		t.Errorf("no jump expected, got %+v", m)
	}
	if b.Velocity.Y != gravity {
		t.Errorf("velocity.y = %v, expected %v", b.Velocity.Y, gravity)
	}
	if b.Position.Y != 50+gravity {
		t.Errorf("position.y = %v, expected %v", b.Position.Y, 50+gravity)
	}
	if b.Velocity.X != 0 || b.Position.X != config.Default().Player.X {
		t.Errorf("horizontal motion should be zero, got pos %v vel %v", b.Position, b.Velocity)
	}
}

func TestBodyGravityScalesWithElapsed(t *testing.T) {
	gravity := config.Default().Physics.Gravity
	b := newTestBody(50)

	b.Advance(0.5, false, false)

	if b.Velocity.Y != gravity*0.5 {
		t.Errorf("velocity.y = %v, expected %v", b.Velocity.Y, gravity*0.5)
	}
}

func TestBodyGravityDisabled(t *testing.T) {
	b := newTestBody(50)
	b.Gravity = false

	b.Advance(1, false, false)

	if b.Velocity.Y != 0 || b.Position.Y != 50 {
		t.Errorf("body without gravity should stay put, got pos %v vel %v", b.Position, b.Velocity)
	}
	if b.Acceleration != (core.Vec2{}) {
		t.Errorf("acceleration should be zero, got %v", b.Acceleration)
	}
}

func TestBodyJumpImpulse(t *testing.T) {
	phys := config.Default().Physics
	b := newTestBody(50)

	m := b.Advance(1, true, false)

	if !m.Jumped {
		t.Fatal("jump input should produce an impulse")
	}
	want := -phys.JumpVelocity - phys.JumpAcceleration
	if b.Velocity.Y != want {
		t.Errorf("velocity.y = %v, expected %v", b.Velocity.Y, want)
	}
	if b.Position.Y >= 50 {
		t.Errorf("jump should move the body up, y = %v", b.Position.Y)
	}
	if b.CanJump() {
		t.Error("jump should clear the debounce flag")
	}
}

func TestBodyJumpDebounce(t *testing.T) {
	b := newTestBody(50)

	jumps := 0
	for i := 0; i < 30; i++ {
		if b.Advance(1, true, false).Jumped {
			jumps++
		}
	}
	if jumps != 1 {
		t.Errorf("holding jump for 30 ticks produced %d impulses, expected 1", jumps)
	}

	// Release re-arms the next press
	b.Advance(1, false, false)
	if !b.CanJump() {
		t.Error("release should restore the debounce flag")
	}
	if !b.Advance(1, true, false).Jumped {
		t.Error("press after release should jump")
	}
}

func TestBodyScreenTopClamp(t *testing.T) {
	player := config.Default().Player
	b := newTestBody(0)

	// Tap as fast as the debounce allows
	for i := 0; i < 500; i++ {
		b.Advance(1, i%2 == 0, false)
		if b.Position.Y < player.ScreenTop {
			t.Fatalf("tick %d: y = %v is above screen top %v", i, b.Position.Y, player.ScreenTop)
		}
	}
}

func TestBodyClampKeepsVelocity(t *testing.T) {
	player := config.Default().Player
	b := newTestBody(player.ScreenTop)
	b.Gravity = false
	b.Velocity = core.Vec2{Y: -2.5}

	b.Advance(1, false, false)

	if b.Position.Y != player.ScreenTop {
		t.Errorf("y = %v, expected clamp to %v", b.Position.Y, player.ScreenTop)
	}
	if b.Velocity.Y != -2.5 {
		t.Errorf("clamp must not change velocity, got %v", b.Velocity.Y)
	}
}

func TestBodyNonPositiveElapsedIsNoop(t *testing.T) {
	for _, dt := range []float64{0, -1} {
		b := newTestBody(50)
		before := b

		m := b.Advance(dt, true, true)

		if m.Jumped || m.AutoJumped {
			t.Errorf("dt=%v: no impulse expected, got %+v", dt, m)
		}
		if b != before {
			t.Errorf("dt=%v: body changed: %+v -> %+v", dt, before, b)
		}
	}
}

func TestBodyAutoJump(t *testing.T) {
	player := config.Default().Player

	t.Run("above threshold", func(t *testing.T) {
		b := newTestBody(player.AutoJumpHeight + 1)
		m := b.Advance(1, false, true)

		if !m.AutoJumped {
			t.Fatal("attract mode should auto-jump once y exceeds the threshold")
		}
		if b.Velocity.Y >= 0 {
			t.Errorf("auto-jump should move up, velocity.y = %v", b.Velocity.Y)
		}
		if !b.CanJump() {
			t.Error("auto-jump must not consume the debounce flag")
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		b := newTestBody(player.AutoJumpHeight - 1)
		if b.Advance(1, false, true).AutoJumped {
			t.Error("no auto-jump expected while y is under the threshold")
		}
	})

	t.Run("not attract", func(t *testing.T) {
		b := newTestBody(player.AutoJumpHeight + 1)
		if b.Advance(1, false, false).AutoJumped {
			t.Error("auto-jump only runs on the start screen")
		}
	})
}

func TestBodyBounds(t *testing.T) {
	player := config.Default().Player
	b := newTestBody(10)

	r := b.Bounds()
	if r.X != player.X || r.Y != 10 || r.W != player.Width || r.H != player.Height {
		t.Errorf("Bounds() = %+v", r)
	}
}
