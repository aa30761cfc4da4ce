// Package config provides YAML-based configuration loading for the
// simulation. Every tunable constant lives here so tests can construct
// alternate worlds (zero gravity, fixed gaps) without touching globals.
package config

import "time"

// Flappy contains all configuration for the simulation and its session.
type Flappy struct {
	Field     Field     `yaml:"field"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Gaps      Gaps      `yaml:"gaps"`
	Session   Session   `yaml:"session"`
}

// Field is the logical playfield size. The renderer scales it to the terminal.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines integration parameters. Per-frame quantities are expressed
// for one reference frame of 1/FrameRate seconds.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`           // Downward acceleration per frame
	JumpVelocity     float64 `yaml:"jump_velocity"`     // Upward speed set by a jump
	JumpAcceleration float64 `yaml:"jump_acceleration"` // Upward acceleration on the jump frame
	ScrollSpeed      float64 `yaml:"scroll_speed"`      // Obstacle leftward speed per frame
	FrameRate        float64 `yaml:"frame_rate"`        // Reference frames per second
	MaxStep          float64 `yaml:"max_step"`          // Upper bound on frames integrated per tick
}

// Player defines the controlled entity's geometry and bounds.
type Player struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ScreenTop      float64 `yaml:"screen_top"`       // Smallest allowed y
	GroundY        float64 `yaml:"ground_y"`         // y beyond which the entity hits the ground
	AutoJumpHeight float64 `yaml:"auto_jump_height"` // Start screen bob threshold
}

// Obstacles defines the fixed obstacle pool.
type Obstacles struct {
	Count     int     `yaml:"count"`
	FirstX    float64 `yaml:"first_x"`
	Spacing   float64 `yaml:"spacing"`
	Width     float64 `yaml:"width"`
	Length    float64 `yaml:"length"`     // Height of each pipe segment
	GapHeight float64 `yaml:"gap_height"` // Vertical opening between segments
	BaseY     float64 `yaml:"base_y"`     // Gap top before the offset is applied
	ScoreLine float64 `yaml:"score_line"` // x at or below which a pass counts
}

// Gaps bounds the randomized vertical gap offset.
type Gaps struct {
	MinOffset float64   `yaml:"min_offset"`
	MaxOffset float64   `yaml:"max_offset"`
	MaxShift  float64   `yaml:"max_shift"` // Largest change between consecutive gaps
	Sequence  []float64 `yaml:"sequence,omitempty"`
}

// Session defines restart behavior after termination.
type Session struct {
	RestartAfter time.Duration `yaml:"restart_after"`
	AutoRestart  bool          `yaml:"auto_restart"`
}

// JumpDistance is how far an obstacle moves right when it is recycled.
// It keeps the pool's spacing pattern intact.
func (o Obstacles) JumpDistance() float64 {
	return float64(o.Count) * o.Spacing
}
