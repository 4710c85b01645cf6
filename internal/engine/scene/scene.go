// Package scene owns the cuboid scene: the intact/exploded state machine,
// the per-tick update, and the painter's-algorithm compositor.
package scene

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/shatterbox/internal/engine/camera"
	"github.com/Faultbox/shatterbox/internal/engine/geometry"
	"github.com/Faultbox/shatterbox/internal/engine/lighting"
	"github.com/Faultbox/shatterbox/internal/engine/physics"
	"github.com/Faultbox/shatterbox/internal/engine/shatter"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/internal/logger"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// State is the scene's lifecycle state.
type State int

const (
	// Intact: one cuboid rotating in place.
	Intact State = iota
	// Exploded: fragments under physics. Terminal for the session.
	Exploded
)

func (s State) String() string {
	switch s {
	case Intact:
		return "intact"
	case Exploded:
		return "exploded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config describes the initial scene and the engines driving it.
type Config struct {
	Position      math.Vec3
	Size          float64
	Color         math.Vec3
	Tilt          float64 // Initial X rotation of the intact cuboid
	RotationSpeed float64 // Radians added to the Y angle per tick
	FocalLength   float64
	Zoom          float64
	Background    surface.Color

	Shatter shatter.Options
	Physics physics.Config
	Light   lighting.Directional
}

// DefaultConfig returns the startup scene.
func DefaultConfig() Config {
	return Config{
		Position:      math.Vec3{X: 0, Y: 0, Z: 8},
		Size:          2,
		Color:         math.Vec3{X: 0.27, Y: 0.55, Z: 0.9},
		RotationSpeed: 0.01,
		FocalLength:   400,
		Zoom:          1,
		Background:    surface.ColorBackground,
		Shatter:       shatter.DefaultOptions(),
		Physics:       physics.DefaultConfig(),
		Light:         lighting.Default(),
	}
}

// Scene is the aggregate root. It is not safe for concurrent use except
// through Post and the On* input methods, which queue intents for the next
// Tick.
type Scene struct {
	Main          *geometry.Cuboid
	Fragments     []*geometry.Cuboid
	RotationAngle float64
	Zoom          float64

	cfg        Config
	state      State
	rng        shatter.Source
	integrator *physics.Integrator
	faces      []geometry.Face
	log        *zap.Logger

	mu      sync.Mutex
	pending []Intent
}

// New creates an intact scene. rng seeds fragment generation.
func New(cfg Config, rng shatter.Source) (*Scene, error) {
	if rng == nil {
		return nil, errors.New("scene: random source is required")
	}
	if !(cfg.FocalLength > 0) {
		return nil, fmt.Errorf("scene: focal length must be positive: got %v", cfg.FocalLength)
	}
	if err := cfg.Shatter.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	main, err := geometry.New(cfg.Position, cfg.Size, cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	main.Rotation.X = cfg.Tilt

	zoom := cfg.Zoom
	if zoom == 0 {
		zoom = 1
	}

	return &Scene{
		Main:       main,
		Zoom:       camera.ClampZoom(zoom),
		cfg:        cfg,
		state:      Intact,
		rng:        rng,
		integrator: physics.New(cfg.Physics),
		log:        logger.Named("scene"),
	}, nil
}

// State returns the current lifecycle state.
func (s *Scene) State() State {
	return s.state
}

// IsExploded reports whether the scene has left the Intact state.
func (s *Scene) IsExploded() bool {
	return s.state == Exploded
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config {
	return s.cfg
}

// Explode shatters the main cuboid. It reports whether the transition
// happened; calling it on an exploded scene does nothing.
func (s *Scene) Explode() (bool, error) {
	if s.state == Exploded {
		return false, nil
	}
	frags, err := shatter.ExplodeWith(s.Main, s.cfg.Shatter, s.rng)
	if err != nil {
		return false, fmt.Errorf("explode: %w", err)
	}
	s.Fragments = frags
	s.state = Exploded
	s.log.Info("cuboid exploded",
		zap.Int("fragments", len(frags)),
		zap.Float64("rotation_y", s.Main.Rotation.Y),
	)
	return true, nil
}

// Scroll applies one zoom notch. Positive direction zooms in.
func (s *Scene) Scroll(direction int) {
	s.Zoom = camera.ZoomStep(s.Zoom, direction)
	s.log.Debug("zoom changed", zap.Float64("zoom", s.Zoom))
}

// SetColorChannel sets one channel of the main cuboid and of every existing
// fragment to value/255. Values outside [0,255] are clamped.
func (s *Scene) SetColorChannel(ch Channel, value int) error {
	if value < 0 {
		value = 0
	} else if value > 255 {
		value = 255
	}
	v := float64(value) / 255

	if err := ch.set(&s.Main.Color, v); err != nil {
		return err
	}
	for _, f := range s.Fragments {
		_ = ch.set(&f.Color, v)
	}
	s.log.Debug("color changed", zap.Stringer("channel", ch), zap.Int("value", value))
	return nil
}

// Resting counts fragments that have settled on the floor.
func (s *Scene) Resting() int {
	n := 0
	for _, f := range s.Fragments {
		if s.integrator.Resting(f) {
			n++
		}
	}
	return n
}
