package engine

import "time"

// Timer is a cancellable delayed task polled from the frame loop
// Reset replaces the pending deadline instead of queueing a second one
type Timer struct {
	delay    time.Duration
	deadline time.Time
	armed    bool
	fn       func()
}

// NewTimer creates a disarmed timer that runs fn delay after the last Reset
func NewTimer(delay time.Duration, fn func()) *Timer {
	return &Timer{delay: delay, fn: fn}
}

// Reset arms the timer relative to now, discarding any pending deadline
func (t *Timer) Reset(now time.Time) {
	t.deadline = now.Add(t.delay)
	t.armed = true
}

// Stop disarms the timer; returns true if a deadline was pending
func (t *Timer) Stop() bool {
	wasArmed := t.armed
	t.armed = false
	t.deadline = time.Time{}
	return wasArmed
}

// Pending reports whether the timer is armed
func (t *Timer) Pending() bool {
	return t.armed
}

// Deadline returns the pending deadline, zero when disarmed
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Poll runs the task if the deadline has passed; returns true when it fired
// The timer is disarmed before fn runs so fn may re-arm it
func (t *Timer) Poll(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	t.armed = false
	if t.fn != nil {
		t.fn()
	}
	return true
}
