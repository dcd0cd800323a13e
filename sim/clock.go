// Package sim runs the receiver and the dispatch loop against a virtual clock
// so whole remote sessions replay deterministically and much faster than
// real time.
package sim

import "time"

// Clock is virtual time. It only moves when something waits on it.
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration {
	return c.now
}

// Delay implements irmouse.Delayer.
func (c *Clock) Delay(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// AdvanceTo moves the clock forward to t. It never moves backwards.
func (c *Clock) AdvanceTo(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// Timer is a free running compare timer on a Clock.
type Timer struct {
	clock   *Clock
	period  time.Duration
	armed   time.Duration
	cleared time.Duration
	waits   int
}

func NewTimer(clock *Clock) *Timer {
	return &Timer{clock: clock}
}

func (t *Timer) Arm(period time.Duration) {
	t.period = period
	t.armed = t.clock.Now()
	t.cleared = t.armed
}

// Wait returns at the first compare match after the flag was last cleared,
// or at once if that match is already in the past.
func (t *Timer) Wait() {
	t.waits++
	if t.period <= 0 {
		return
	}
	n := (t.cleared-t.armed)/t.period + 1
	match := t.armed + n*t.period
	t.clock.AdvanceTo(match)
	t.cleared = t.clock.Now()
}

// Waits returns how many times Wait was called.
func (t *Timer) Waits() int {
	return t.waits
}
