package flappy

import (
	"testing"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

func TestOverlapsSymmetric(t *testing.T) {
	body := core.NewRect(40, 60, 17, 12)

	tests := []struct {
		name string
		b    core.Rect
		want bool
	}{
		{"through the body", core.NewRect(45, 0, 26, 100), true},
		{"edge to the right", core.NewRect(57, 60, 26, 12), false},
		{"edge below", core.NewRect(40, 72, 26, 12), false},
		{"just inside the right edge", core.NewRect(56.9, 60, 26, 12), true},
		{"far away", core.NewRect(150, 0, 26, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab, ba := Overlaps(body, tc.b), Overlaps(tc.b, body)
			if ab != ba {
				t.Fatalf("asymmetric: overlaps(A,B)=%v overlaps(B,A)=%v", ab, ba)
			}
			if ab != tc.want {
				t.Errorf("overlaps = %v, expected %v", ab, tc.want)
			}
		})
	}
}

func TestHitsGround(t *testing.T) {
	ground := config.Default().Player.GroundY

	if HitsGround(core.Vec2{Y: ground}, ground) {
		t.Error("exactly on the threshold is not contact")
	}
	if !HitsGround(core.Vec2{Y: ground + 0.01}, ground) {
		t.Error("below the threshold is contact")
	}
	if HitsGround(core.Vec2{Y: -16}, ground) {
		t.Error("top of the screen is not ground")
	}
}

func TestHitsObstacle(t *testing.T) {
	geom := config.Default().Obstacles
	o := NewObstacle(40, 50, geom) // gap from 50 to 50+gap height

	inGap := core.NewRect(45, 60, 17, 12)
	if hitsObstacle(inGap, &o) {
		t.Error("body inside the gap should not collide")
	}

	upper := core.NewRect(45, 45, 17, 12)
	if !hitsObstacle(upper, &o) {
		t.Error("body crossing the gap top should collide")
	}

	lower := core.NewRect(45, 50+geom.GapHeight-5, 17, 12)
	if !hitsObstacle(lower, &o) {
		t.Error("body crossing the gap bottom should collide")
	}
}
