// Package ticks provides fixed-width monotonic tick arithmetic for interval
// scheduling. The counter is 32 bits of milliseconds and overflows roughly
// every 49.7 days, so all comparisons go through Diff, which computes the
// signed modular difference instead of comparing raw values.
package ticks

import "time"

// Ticks is a monotonic millisecond counter that wraps at 2^32.
type Ticks uint32

var epoch = time.Now()

// Now returns the current tick count. It is derived from the runtime
// monotonic clock and is immune to wall-clock adjustments.
func Now() Ticks {
	return Ticks(uint64(time.Since(epoch) / time.Millisecond))
}

// Add advances t by d, wrapping modulo 2^32.
func Add(t Ticks, d time.Duration) Ticks {
	return t + Ticks(uint64(d/time.Millisecond))
}

// Diff returns a-b as a signed duration. The subtraction is modular, so the
// result is correct even when the counter has wrapped between b and a, as
// long as the real elapsed time is under half the counter range.
func Diff(a, b Ticks) time.Duration {
	return time.Duration(int32(a-b)) * time.Millisecond
}

// Elapsed reports whether at least interval has passed between since and now.
func Elapsed(now, since Ticks, interval time.Duration) bool {
	return Diff(now, since) >= interval
}
