package testutil

import (
	"time"

	"sports-ticker/internal/ticks"
)

// TickSource is a manually advanced tick counter for scheduler tests.
type TickSource struct {
	Current ticks.Ticks
}

// Now returns the current fake tick count.
func (t *TickSource) Now() ticks.Ticks { return t.Current }

// Advance moves the fake clock forward.
func (t *TickSource) Advance(d time.Duration) {
	t.Current = ticks.Add(t.Current, d)
}

// SleepRecorder captures sleep calls without sleeping; intended for tests.
type SleepRecorder struct {
	Slept []time.Duration
}

// Sleep records the requested duration and returns immediately.
func (s *SleepRecorder) Sleep(d time.Duration) {
	s.Slept = append(s.Slept, d)
}

// Total returns the sum of recorded sleeps.
func (s *SleepRecorder) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Slept {
		total += d
	}
	return total
}
