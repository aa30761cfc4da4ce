package flappy

import (
	"fmt"
	"math"

	"github.com/Arkantos123789/Bird-that-flaps/internal/config"
	"github.com/Arkantos123789/Bird-that-flaps/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▒'
	RisingChar    = '▓'
	FallingChar   = '░'
)

// Tilt limits: velocity.y in [-7, 7] maps to an angle in [-0.6, 0.6].
const (
	tiltVelocity = 7.0
	tiltAngle    = 0.6
	tiltStraight = 0.2
)

// viewport maps playfield units to screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, field config.Field) viewport {
	return viewport{
		sx: float64(dst.Width()) / field.Width,
		sy: float64(dst.Height()) / field.Height,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

// cells returns the clipped cell span covered by r.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := core.Clamp(int(math.Floor(r.X*v.sx)), 0, v.w)
	y0 := core.Clamp(int(math.Floor(r.Y*v.sy)), 0, v.h)
	x1 := core.Clamp(int(math.Ceil(r.Right()*v.sx)), 0, v.w)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*v.sy)), 0, v.h)
	return x0, y0, x1 - x0, y1 - y0
}

// Render draws the current simulation state into dst.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, s.cfg.Field)

	// Ground tiles start where a body resting on the threshold would end.
	ground := core.NewRect(0, s.cfg.Player.GroundY+s.cfg.Player.Height, s.cfg.Field.Width, s.cfg.Field.Height)
	gx, gy, gw, gh := v.cells(ground)
	dst.FillRect(gx, gy, gw, gh, GroundChar, core.ColorOrange)

	for i := range s.obstacles {
		s.drawObstacle(dst, v, &s.obstacles[i])
	}

	s.drawBody(dst, v)

	hud := fmt.Sprintf(" Best Score: %d   Current Score: %d ", s.score.Best, s.score.Current)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightYellow)

	switch s.phase.Kind {
	case PreGame:
		dst.DrawTextCentered(dst.Height()/3, "Press SPACE to flap", core.ColorWhite)
	case Terminated:
		drawCenteredMessage(dst, "OUCH!", fmt.Sprintf("Score: %d  |  Best: %d", s.score.Current, s.score.Best))
	}
}

// drawObstacle renders both pipe segments with caps facing the gap.
func (s *Simulation) drawObstacle(dst *core.Screen, v viewport, o *Obstacle) {
	segs := o.Bounds()

	x, y, w, h := v.cells(segs[0])
	dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)
	if h > 0 {
		dst.DrawHLine(x, y+h-1, w, PipeCapTop, core.ColorBrightGreen)
	}

	x, y, w, h = v.cells(segs[1])
	dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)
	if h > 0 {
		dst.DrawHLine(x, y, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawBody renders the body with a sprite picked from its vertical
// direction and a heading marker from its tilt.
func (s *Simulation) drawBody(dst *core.Screen, v viewport) {
	b := &s.body
	x, y, w, h := v.cells(b.Bounds())
	if w == 0 || h == 0 {
		return
	}

	fill := FallingChar
	if b.Velocity.Y < 0 {
		fill = RisingChar
	}
	dst.FillRect(x, y, w, h, fill, core.ColorOrange)

	marker := '→'
	switch angle := RescaleRange(b.Velocity.Y, -tiltVelocity, tiltVelocity, -tiltAngle, tiltAngle); {
	case angle < -tiltStraight:
		marker = '↗'
	case angle > tiltStraight:
		marker = '↘'
	}
	dst.SetColored(x+w-1, y+h/2, marker, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// RescaleRange maps value from [oldMin, oldMax] into [newMin, newMax],
// clamping value to the old range first.
func RescaleRange(value, oldMin, oldMax, newMin, newMax float64) float64 {
	oldRange := oldMax - oldMin
	newRange := newMax - newMin
	return (core.ClampF(value, oldMin, oldMax)-oldMin)*newRange/oldRange + newMin
}
