package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shatterbox/internal/engine/scene"
)

// StatsLogger aggregates frame stats and logs them once per interval at
// debug level.
type StatsLogger struct {
	log      *zap.Logger
	interval time.Duration

	start  time.Time
	frames int
}

// NewStatsLogger creates a logger reporting every interval.
func NewStatsLogger(log *zap.Logger, interval time.Duration) *StatsLogger {
	return &StatsLogger{log: log, interval: interval}
}

// Add records one frame. It reports whether a line was logged.
func (s *StatsLogger) Add(stats scene.FrameStats, now time.Time) bool {
	if s.start.IsZero() {
		s.start = now
	}
	s.frames++

	elapsed := now.Sub(s.start)
	if elapsed < s.interval {
		return false
	}

	s.log.Debug("frame stats",
		zap.Float64("fps", float64(s.frames)/elapsed.Seconds()),
		zap.Stringer("state", stats.State),
		zap.Int("faces", stats.Faces),
		zap.Int("discarded", stats.Discarded),
		zap.Int("resting", stats.Resting),
	)
	s.frames = 0
	s.start = now
	return true
}
