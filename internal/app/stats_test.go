package app

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/shatterbox/internal/engine/scene"
)

func TestStatsLoggerInterval(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewStatsLogger(zap.New(core), time.Second)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		if s.Add(scene.FrameStats{Faces: 6}, t0.Add(time.Duration(i)*time.Second/60)) {
			t.Fatalf("logged early at frame %d", i)
		}
	}

	last := scene.FrameStats{State: scene.Exploded, Faces: 600, Discarded: 2, Resting: 10}
	if !s.Add(last, t0.Add(time.Second)) {
		t.Fatal("expected a report after one second")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["faces"] != int64(600) || fields["resting"] != int64(10) {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["state"] != "exploded" {
		t.Errorf("state = %v, want exploded", fields["state"])
	}
	if fps := fields["fps"].(float64); fps != 61 {
		t.Errorf("fps = %v, want 61", fps)
	}

	// Counter restarts for the next interval.
	if s.Add(last, t0.Add(time.Second+time.Millisecond)) {
		t.Error("logged again immediately after a report")
	}
}
