// Package timer provides deadline timers driven by an explicit simulation
// clock instead of wall time.
package timer

import "time"

// Timer is a one-shot or cyclic deadline with a completion callback.
//
// A timer is pending between Activate and either natural expiry (one-shot)
// or Clear. Update must be called once per frame with the current clock
// value; it is a no-op on a disarmed timer.
type Timer struct {
	Duration time.Duration
	Cyclic   bool
	OnExpire func()

	start   time.Duration
	pending bool
}

// New creates a disarmed timer.
func New(duration time.Duration, cyclic bool, onExpire func()) *Timer {
	return &Timer{Duration: duration, Cyclic: cyclic, OnExpire: onExpire}
}

// Activate arms the timer at now. Activating a pending timer only resets its
// start; it never fires twice for one arming.
func (t *Timer) Activate(now time.Duration) {
	if t == nil {
		return
	}
	t.start = now
	t.pending = true
}

// Clear disarms the timer without firing.
func (t *Timer) Clear() {
	if t == nil {
		return
	}
	t.pending = false
	t.start = 0
}

// Pending reports whether the timer is armed.
func (t *Timer) Pending() bool {
	return t != nil && t.pending
}

// Deadline returns the clock value at which the timer expires.
func (t *Timer) Deadline() time.Duration {
	if t == nil {
		return 0
	}
	return t.start + t.Duration
}

// Remaining returns the time left before expiry, or zero when disarmed.
func (t *Timer) Remaining(now time.Duration) time.Duration {
	if !t.Pending() {
		return 0
	}
	left := t.Deadline() - now
	if left < 0 {
		return 0
	}
	return left
}

// Update fires OnExpire once when the elapsed time reaches Duration and
// reports whether it fired. The timer is re-armed (cyclic) or disarmed before
// the callback runs, so the callback may activate it again.
func (t *Timer) Update(now time.Duration) bool {
	if t == nil || !t.pending {
		return false
	}
	if now-t.start < t.Duration {
		return false
	}
	if t.Cyclic {
		t.start = now
	} else {
		t.Clear()
	}
	if t.OnExpire != nil {
		t.OnExpire()
	}
	return true
}
