package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int {
	return int(time.Second / f.step)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// Time left over after a tick carries into the next call.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
