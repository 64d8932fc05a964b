package sim

import "time"

// Clock supplies monotonically increasing timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock advanced explicitly, for tests and replays.
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.t = c.t.Add(d)
	}
}

// FrameTimer turns consecutive clock readings into per-tick elapsed time.
type FrameTimer struct {
	clock   Clock
	last    time.Time
	started bool
	maxMS   float64
}

// NewFrameTimer creates a timer that never reports more than maxMS per tick.
func NewFrameTimer(clock Clock, maxMS float64) *FrameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameTimer{clock: clock, maxMS: maxMS}
}

// Reset forgets the previous reading; the next Elapsed call returns 0.
func (f *FrameTimer) Reset() {
	f.started = false
}

// Elapsed returns the milliseconds since the previous call, clamped to
// [0, maxMS]. The first call after a reset returns 0.
func (f *FrameTimer) Elapsed() float64 {
	now := f.clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	dt := float64(now.Sub(f.last)) / float64(time.Millisecond)
	f.last = now
	return clampFrame(dt, f.maxMS)
}

func clampFrame(dt, maxMS float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxMS {
		return maxMS
	}
	return dt
}
