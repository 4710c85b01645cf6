package surface

import (
	"image/color"
	"testing"

	"github.com/Faultbox/shatterbox/pkg/math"
)

func TestRGB(t *testing.T) {
	c := RGB(255, 0, 51)
	if c.R != 1 || c.G != 0 || c.A != 1 {
		t.Errorf("RGB(255, 0, 51) = %+v, want R=1 G=0 A=1", c)
	}
	if got := c.NRGBA(); got != (color.NRGBA{255, 0, 51, 255}) {
		t.Errorf("NRGBA() = %v, want {255 0 51 255}", got)
	}
}

func TestNRGBAClamps(t *testing.T) {
	got := Color{R: -0.5, G: 1.5, B: 0.5, A: 1}.NRGBA()
	want := color.NRGBA{0, 255, 128, 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorWhite.WithAlpha(0.25)
	if c.A != 0.25 || c.R != 1 {
		t.Errorf("WithAlpha(0.25) = %+v", c)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(320, 200)
	if w, h := r.Size(); w != 320 || h != 200 {
		t.Fatalf("Size() = %d,%d, want 320,200", w, h)
	}

	pts := []math.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	r.FillBackground(ColorBlack)
	r.FillAndStrokePolygon(pts, ColorWhite, Stroke{Color: ColorBlack, Width: 1})
	pts[0].X = 99

	if len(r.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(r.Calls))
	}
	if r.Calls[0].Points[0].X != 0 {
		t.Error("recorder should copy points, not alias the caller's slice")
	}

	r.FillBackground(ColorBlack)
	if len(r.Calls) != 0 || r.Clears != 2 {
		t.Errorf("after second clear: calls=%d clears=%d, want 0 and 2", len(r.Calls), r.Clears)
	}
}
