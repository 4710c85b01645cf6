package input

import (
	stdmath "math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/shatterbox/internal/engine/scene"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// ColorStep is the channel change per key press, in 0-255 units.
const ColorStep = 16

// Action is an app-level request the scene does not handle.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionScreenshot
)

// Target receives scene intents.
type Target interface {
	OnClick()
	OnScroll(direction int)
	OnColorChange(ch scene.Channel, value int)
}

var channelKeys = map[sdl.Scancode]scene.Channel{
	sdl.SCANCODE_R: scene.Red,
	sdl.SCANCODE_G: scene.Green,
	sdl.SCANCODE_B: scene.Blue,
}

// Controller maps events onto a Target. It tracks the color it has asked
// for, so several presses before the next tick accumulate.
type Controller struct {
	target Target
	color  [3]int
}

// NewController creates a controller starting from the given 0..1 color.
func NewController(target Target, color math.Vec3) *Controller {
	return &Controller{
		target: target,
		color:  [3]int{to255(color.X), to255(color.Y), to255(color.Z)},
	}
}

// Handle dispatches one event and returns any app-level action.
func (c *Controller) Handle(e Event) Action {
	switch e.Type {
	case EventQuit:
		return ActionQuit
	case EventWindowResize:
		return ActionResize
	case EventMouseDown:
		c.target.OnClick()
	case EventMouseWheel:
		if e.WheelY > 0 {
			c.target.OnScroll(1)
		} else {
			c.target.OnScroll(-1)
		}
	case EventKeyDown:
		return c.key(e)
	}
	return ActionNone
}

func (c *Controller) key(e Event) Action {
	switch e.Key {
	case sdl.SCANCODE_ESCAPE:
		return ActionQuit
	case sdl.SCANCODE_F12:
		return ActionScreenshot
	case sdl.SCANCODE_SPACE:
		c.target.OnClick()
		return ActionNone
	}

	ch, ok := channelKeys[e.Key]
	if !ok {
		return ActionNone
	}
	step := ColorStep
	if e.Shift {
		step = -step
	}
	v := min(max(c.color[ch]+step, 0), 255)
	c.color[ch] = v
	c.target.OnColorChange(ch, v)
	return ActionNone
}

// Color returns the last requested channel values.
func (c *Controller) Color() [3]int {
	return c.color
}

func to255(v float64) int {
	return int(min(max(stdmath.Round(v*255), 0), 255))
}
