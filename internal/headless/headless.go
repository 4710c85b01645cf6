// Package headless drives a scene without a window, for frame dumps and
// simulation statistics.
package headless

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shatterbox/internal/engine/scene"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
)

// NeverExplode disables the scripted click.
const NeverExplode = -1

// Options control a headless run.
type Options struct {
	Ticks     int // Frames to run
	ExplodeAt int // Tick at which a click is posted, or NeverExplode
}

// Visit is called after every tick with the tick index and its stats.
type Visit func(tick int, stats scene.FrameStats) error

// ErrStop ends a run early without reporting an error.
var ErrStop = errors.New("stop")

// Run ticks s on surf. The click for ExplodeAt goes through the intent
// queue, so tick ExplodeAt is the first to draw fragments.
func Run(s *scene.Scene, surf surface.Surface, opts Options, visit Visit) error {
	if opts.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative: got %d", opts.Ticks)
	}
	for tick := 0; tick < opts.Ticks; tick++ {
		if tick == opts.ExplodeAt {
			s.OnClick()
		}
		stats := s.Tick(surf)
		if visit == nil {
			continue
		}
		if err := visit(tick, stats); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return fmt.Errorf("tick %d: %w", tick, err)
		}
	}
	return nil
}
