package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shatterbox/pkg/math"
)

// Channel selects a color component.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

func (c Channel) set(v *math.Vec3, value float64) error {
	switch c {
	case Red:
		v.X = value
	case Green:
		v.Y = value
	case Blue:
		v.Z = value
	default:
		return fmt.Errorf("unknown color channel %d", int(c))
	}
	return nil
}

// Get returns the channel's component of v.
func (c Channel) Get(v math.Vec3) float64 {
	switch c {
	case Green:
		return v.Y
	case Blue:
		return v.Z
	default:
		return v.X
	}
}

// IntentKind identifies a queued input action.
type IntentKind int

const (
	IntentExplode IntentKind = iota
	IntentScroll
	IntentColor
)

// Intent is an input action waiting for the next tick.
type Intent struct {
	Kind      IntentKind
	Direction int     // IntentScroll
	Channel   Channel // IntentColor
	Value     int     // IntentColor, 0-255
}

// Post queues an intent. Safe to call from any goroutine.
func (s *Scene) Post(in Intent) {
	s.mu.Lock()
	s.pending = append(s.pending, in)
	s.mu.Unlock()
}

// OnClick requests the explosion.
func (s *Scene) OnClick() {
	s.Post(Intent{Kind: IntentExplode})
}

// OnScroll requests one zoom notch.
func (s *Scene) OnScroll(direction int) {
	s.Post(Intent{Kind: IntentScroll, Direction: direction})
}

// OnColorChange requests a color channel update.
func (s *Scene) OnColorChange(ch Channel, value int) {
	s.Post(Intent{Kind: IntentColor, Channel: ch, Value: value})
}

// ApplyPending applies queued intents in arrival order and returns how many
// were applied. A failing intent is logged and skipped.
func (s *Scene) ApplyPending() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, in := range batch {
		if err := s.apply(in); err != nil {
			s.log.Warn("intent dropped", zap.Int("kind", int(in.Kind)), zap.Error(err))
		}
	}
	return len(batch)
}

func (s *Scene) apply(in Intent) error {
	switch in.Kind {
	case IntentExplode:
		_, err := s.Explode()
		return err
	case IntentScroll:
		s.Scroll(in.Direction)
		return nil
	case IntentColor:
		return s.SetColorChannel(in.Channel, in.Value)
	default:
		return fmt.Errorf("unknown intent kind %d", int(in.Kind))
	}
}
