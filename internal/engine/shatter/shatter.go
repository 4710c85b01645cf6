// Package shatter splits a cuboid into a regular grid of fragments with
// outward launch velocities and random spin.
package shatter

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Faultbox/shatterbox/internal/engine/geometry"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// DefaultDivisions is the grid resolution per axis.
const DefaultDivisions = 6

// ErrInvalidDivisions is returned for a grid resolution below 1.
var ErrInvalidDivisions = errors.New("divisions must be at least 1")

// Source supplies uniform random numbers in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG generator for seed. A zero seed is replaced by a
// random one; the seed actually used is returned so a run can be replayed.
func NewSource(seed uint64) (*rand.Rand, uint64) {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// Options tune fragment generation.
type Options struct {
	Divisions  int
	SpeedMin   float64 // Radial launch speed range
	SpeedMax   float64
	UpwardBias float64 // Added to Y after the radial velocity is scaled
	SpinMax    float64 // Angular velocity per axis in [-SpinMax, SpinMax]
	Gap        float64 // Fragment edge = cell edge * Gap
}

// DefaultOptions returns the standard explosion parameters.
func DefaultOptions() Options {
	return Options{
		Divisions:  DefaultDivisions,
		SpeedMin:   0.15,
		SpeedMax:   0.25,
		UpwardBias: 0.15,
		SpinMax:    0.15,
		Gap:        0.95,
	}
}

// Validate checks the options for programmer errors.
func (o Options) Validate() error {
	if o.Divisions < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDivisions, o.Divisions)
	}
	if o.SpeedMax < o.SpeedMin {
		return fmt.Errorf("speed range inverted: min %v > max %v", o.SpeedMin, o.SpeedMax)
	}
	if !(o.Gap > 0) {
		return fmt.Errorf("gap must be positive: got %v", o.Gap)
	}
	if o.SpinMax < 0 {
		return fmt.Errorf("spin must not be negative: got %v", o.SpinMax)
	}
	return nil
}

// Explode splits parent into divisions³ fragments using the default options.
func Explode(parent *geometry.Cuboid, divisions int, rng Source) ([]*geometry.Cuboid, error) {
	opts := DefaultOptions()
	opts.Divisions = divisions
	return ExplodeWith(parent, opts, rng)
}

// ExplodeWith splits parent according to opts. Fragments are ordered by
// grid index with X outermost and Z innermost. The parent is not modified.
func ExplodeWith(parent *geometry.Cuboid, opts Options, rng Source) ([]*geometry.Cuboid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !(parent.Size > 0) {
		return nil, fmt.Errorf("%w: got %v", geometry.ErrInvalidSize, parent.Size)
	}

	n := opts.Divisions
	edge := parent.Size / float64(n)
	half := float64(n) / 2
	mass := parent.Mass / float64(n*n*n)

	fragments := make([]*geometry.Cuboid, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				offset := math.Vec3{
					X: (float64(i) - half + 0.5) * edge,
					Y: (float64(j) - half + 0.5) * edge,
					Z: (float64(k) - half + 0.5) * edge,
				}

				speed := uniform(rng, opts.SpeedMin, opts.SpeedMax)
				velocity := offset.Normalize().Scale(speed)
				velocity.Y += opts.UpwardBias

				spin := math.Vec3{
					X: uniform(rng, -opts.SpinMax, opts.SpinMax),
					Y: uniform(rng, -opts.SpinMax, opts.SpinMax),
					Z: uniform(rng, -opts.SpinMax, opts.SpinMax),
				}

				fragments = append(fragments, &geometry.Cuboid{
					Position:        parent.Position.Add(offset),
					Size:            edge * opts.Gap,
					Color:           parent.Color,
					Velocity:        velocity,
					AngularVelocity: spin,
					Mass:            mass,
				})
			}
		}
	}
	return fragments, nil
}

func uniform(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
