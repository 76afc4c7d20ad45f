package core

import "time"

// FixedStep decouples the board's tick rate from the frontend's frame rate.
// Frontends poll ShouldStep once per frame and advance the board when it
// reports true.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given ticks
// per second. The first poll fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the current tick interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// Restart drops any accumulated time so the next tick is a full interval
// away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = f.now()
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
