package keepups

import "time"

// Timer is a one-shot countdown driven by simulation ticks instead of the
// wall clock, so runs stay deterministic under a fixed timestep.
type Timer struct {
	remaining time.Duration
	armed     bool
}

// Arm (re)starts the countdown. Arming a running timer restarts it.
func (t *Timer) Arm(d time.Duration) {
	t.remaining = d
	t.armed = true
}

// Cancel stops the countdown without firing.
func (t *Timer) Cancel() {
	t.remaining = 0
	t.armed = false
}

// Armed reports whether the timer is counting down.
func (t *Timer) Armed() bool {
	return t.armed
}

// Remaining returns the time left before the timer fires.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Advance moves the countdown forward by dt and reports whether it fired.
// A fired timer disarms itself.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.armed {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.Cancel()
	return true
}
