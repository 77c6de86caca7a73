package timer

import (
	"time"
)

// Timer marks the end of the current frame of the driver loop.
type Timer struct {
	endTime time.Time
	active  bool
}

func NewTimer() Timer {
	return Timer{endTime: time.Time{}, active: false}
}

func (t *Timer) Start(duration time.Duration) {
	t.endTime = time.Now().Add(duration)
	t.active = true
}

func (t *Timer) Stop() {
	t.active = false
}

func (t Timer) Active() bool {
	return t.active
}

// Remaining is zero once the timer timed out or when it is not running.
func (t Timer) Remaining() time.Duration {
	if !t.active {
		return 0
	}
	return max(time.Until(t.endTime), 0)
}

func (t Timer) TimedOut() bool {
	return t.active && !time.Now().Before(t.endTime)
}

// Wait sleeps out the rest of the frame and stops the timer.
func (t *Timer) Wait() {
	time.Sleep(t.Remaining())
	t.Stop()
}
