package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/Faultbox/shatterbox/internal/logger"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks settings that would otherwise fail deep inside the engine.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Scene.Size > 0 && !math.IsInf(c.Scene.Size, 0),
		"scene.size must be positive, got %v", c.Scene.Size)
	check(c.Scene.FocalLength > 0,
		"scene.focal_length must be positive, got %v", c.Scene.FocalLength)
	check(c.Scene.Zoom >= 0,
		"scene.zoom must not be negative, got %v", c.Scene.Zoom)
	check(c.Shatter.Divisions > 0,
		"shatter.divisions must be positive, got %d", c.Shatter.Divisions)
	check(c.Shatter.SpeedMin <= c.Shatter.SpeedMax,
		"shatter speed range inverted: %v > %v", c.Shatter.SpeedMin, c.Shatter.SpeedMax)
	check(c.Shatter.Gap > 0,
		"shatter.gap must be positive, got %v", c.Shatter.Gap)
	check(c.Shatter.SpinMax >= 0,
		"shatter.spin_max must not be negative, got %v", c.Shatter.SpinMax)
	check(c.Physics.Gravity >= 0,
		"physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(logger.ValidLevel(c.Logging.Level),
		"unknown logging.level %q", c.Logging.Level)

	return err
}
