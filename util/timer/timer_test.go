package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInactiveTimer(t *testing.T) {
	tm := NewTimer()
	assert.False(t, tm.Active())
	assert.False(t, tm.TimedOut())
	assert.Zero(t, tm.Remaining())
}

func TestWaitSleepsOutTheFrame(t *testing.T) {
	tm := NewTimer()
	tm.Start(30 * time.Millisecond)
	assert.True(t, tm.Active())
	assert.False(t, tm.TimedOut())

	start := time.Now()
	tm.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.False(t, tm.Active())
}

func TestTimedOut(t *testing.T) {
	tm := NewTimer()
	tm.Start(0)
	assert.True(t, tm.TimedOut())
	assert.Zero(t, tm.Remaining())

	tm.Stop()
	assert.False(t, tm.TimedOut())
}
