package flappy

import "github.com/Arkantos123789/Bird-that-flaps/internal/core"

// Overlaps reports whether two hitboxes intersect. Rectangles that only
// share an edge do not overlap, and the test is symmetric.
func Overlaps(a, b core.Rect) bool {
	return a.Intersects(b)
}

// HitsGround reports whether pos is below the ground threshold. There is
// no ground rectangle; contact is a plain threshold on y.
func HitsGround(pos core.Vec2, groundY float64) bool {
	return pos.Y > groundY
}

// hitsObstacle reports whether r overlaps either segment of o.
func hitsObstacle(r core.Rect, o *Obstacle) bool {
	for _, seg := range o.Bounds() {
		if Overlaps(r, seg) {
			return true
		}
	}
	return false
}
