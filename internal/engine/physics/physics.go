// Package physics advances fragment motion one fixed step at a time.
//
// The model is deliberately simple: constant gravity, multiplicative air
// drag, a single floor plane with restitution and friction, and clamping of
// tiny velocities to exact zero so fragments come to rest. Fragments do not
// interact and mass has no effect.
package physics

import (
	gomath "math"

	"github.com/Faultbox/shatterbox/internal/engine/geometry"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// restEpsilon absorbs rounding in FloorY+half-half.
const restEpsilon = 1e-9

// Config holds the integrator constants. Units are world units per tick.
type Config struct {
	Gravity            float64 `yaml:"gravity"`
	BounceDamping      float64 `yaml:"bounce_damping"`
	Friction           float64 `yaml:"friction"`
	AirResistance      float64 `yaml:"air_resistance"`
	FloorY             float64 `yaml:"floor_y"`
	AngularDamping     float64 `yaml:"angular_damping"`
	MinVelocity        float64 `yaml:"min_velocity"`
	MinAngularVelocity float64 `yaml:"min_angular_velocity"`
}

// DefaultConfig returns the reference constants.
func DefaultConfig() Config {
	return Config{
		Gravity:            0.02,
		BounceDamping:      0.6,
		Friction:           0.95,
		AirResistance:      0.998,
		FloorY:             -4,
		AngularDamping:     0.98,
		MinVelocity:        0.001,
		MinAngularVelocity: 0.001,
	}
}

// Integrator applies Config to cuboids. It holds no per-fragment state.
type Integrator struct {
	cfg Config
}

// New creates an integrator.
func New(cfg Config) *Integrator {
	return &Integrator{cfg: cfg}
}

// Config returns the integrator constants.
func (in *Integrator) Config() Config {
	return in.cfg
}

// StepAll advances every fragment once, in slice order.
func (in *Integrator) StepAll(fragments []*geometry.Cuboid) {
	for _, f := range fragments {
		in.Step(f)
	}
}

// Step advances one fragment by one tick. Gravity is applied before drag;
// reordering changes results bit for bit.
func (in *Integrator) Step(c *geometry.Cuboid) {
	cfg := &in.cfg

	c.Velocity.Y -= cfg.Gravity
	c.Velocity = c.Velocity.Scale(cfg.AirResistance)
	c.Position = c.Position.Add(c.Velocity)

	c.Rotation = c.Rotation.Add(c.AngularVelocity)
	c.AngularVelocity = c.AngularVelocity.Scale(cfg.AngularDamping)

	in.ResolveFloor(c)
	in.ClampToRest(c)
}

// ResolveFloor handles contact with the floor plane and reports whether the
// cuboid touched it. The cuboid is lifted so its bottom sits on the floor,
// the vertical velocity bounces (or stops if already tiny), horizontal
// velocity loses friction, and spin is damped by the bounce factor.
func (in *Integrator) ResolveFloor(c *geometry.Cuboid) bool {
	cfg := &in.cfg
	if c.Bottom() > cfg.FloorY {
		return false
	}

	c.Position.Y = cfg.FloorY + c.HalfSize()
	if gomath.Abs(c.Velocity.Y) > cfg.MinVelocity {
		c.Velocity.Y = -c.Velocity.Y * cfg.BounceDamping
	} else {
		c.Velocity.Y = 0
	}
	c.Velocity.X *= cfg.Friction
	c.Velocity.Z *= cfg.Friction
	c.AngularVelocity = c.AngularVelocity.Scale(cfg.BounceDamping)
	return true
}

// ClampToRest zeroes velocity components below the rest thresholds.
func (in *Integrator) ClampToRest(c *geometry.Cuboid) {
	cfg := &in.cfg
	c.Velocity.X = snap(c.Velocity.X, cfg.MinVelocity)
	c.Velocity.Y = snap(c.Velocity.Y, cfg.MinVelocity)
	c.Velocity.Z = snap(c.Velocity.Z, cfg.MinVelocity)
	c.AngularVelocity.X = snap(c.AngularVelocity.X, cfg.MinAngularVelocity)
	c.AngularVelocity.Y = snap(c.AngularVelocity.Y, cfg.MinAngularVelocity)
	c.AngularVelocity.Z = snap(c.AngularVelocity.Z, cfg.MinAngularVelocity)
}

// Resting reports whether c sits on the floor with no horizontal or
// angular motion left. Vertical velocity is ignored: gravity re-applied
// every tick keeps a grounded fragment bouncing by a tiny amount.
func (in *Integrator) Resting(c *geometry.Cuboid) bool {
	return c.Velocity.X == 0 && c.Velocity.Z == 0 &&
		c.AngularVelocity == (math.Vec3{}) &&
		c.Bottom() <= in.cfg.FloorY+restEpsilon
}

func snap(v, threshold float64) float64 {
	if gomath.Abs(v) < threshold {
		return 0
	}
	return v
}
