package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate reports every value the simulation cannot run with.
func (c Flappy) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field must have a positive size, got %vx%v", c.Field.Width, c.Field.Height)

	check(c.Physics.FrameRate > 0, "physics.frame_rate must be positive, got %v", c.Physics.FrameRate)
	check(c.Physics.MaxStep > 0, "physics.max_step must be positive, got %v", c.Physics.MaxStep)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.ScrollSpeed >= 0, "physics.scroll_speed must not be negative, got %v", c.Physics.ScrollSpeed)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have a positive size")
	check(c.Player.GroundY > c.Player.ScreenTop, "player.ground_y (%v) must be below player.screen_top (%v)", c.Player.GroundY, c.Player.ScreenTop)

	check(c.Obstacles.Count > 0, "obstacles.count must be at least 1, got %d", c.Obstacles.Count)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Spacing >= c.Obstacles.Width, "obstacles.spacing (%v) must not be smaller than obstacles.width (%v)", c.Obstacles.Spacing, c.Obstacles.Width)
	check(c.Obstacles.GapHeight > 0, "obstacles.gap_height must be positive, got %v", c.Obstacles.GapHeight)
	check(c.Obstacles.Length > 0, "obstacles.length must be positive, got %v", c.Obstacles.Length)

	check(c.Gaps.MinOffset <= c.Gaps.MaxOffset, "gaps.min_offset (%v) must not exceed gaps.max_offset (%v)", c.Gaps.MinOffset, c.Gaps.MaxOffset)
	check(c.Gaps.MaxShift >= 0, "gaps.max_shift must not be negative, got %v", c.Gaps.MaxShift)

	check(c.Session.RestartAfter >= 0, "session.restart_after must not be negative, got %v", c.Session.RestartAfter)

	return errors.Join(errs...)
}
