package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresOnceAtDeadline(t *testing.T) {
	fired := 0
	tm := New(500*time.Millisecond, false, func() { fired++ })
	tm.Activate(0)

	for _, now := range []time.Duration{100 * time.Millisecond, 250 * time.Millisecond, 499 * time.Millisecond} {
		assert.False(t, tm.Update(now), "fired early at %v", now)
	}
	assert.Equal(t, 0, fired)

	assert.True(t, tm.Update(500*time.Millisecond))
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Pending())

	assert.False(t, tm.Update(2*time.Second))
	assert.Equal(t, 1, fired)
}

func TestTimerCyclicRearms(t *testing.T) {
	fired := 0
	tm := New(time.Second, true, func() { fired++ })
	tm.Activate(0)

	tm.Update(time.Second)
	require.True(t, tm.Pending())
	assert.Equal(t, 2*time.Second, tm.Deadline())

	tm.Update(1500 * time.Millisecond)
	assert.Equal(t, 1, fired)
	tm.Update(2 * time.Second)
	assert.Equal(t, 2, fired)
}

func TestTimerActivateWhilePendingResetsDeadline(t *testing.T) {
	fired := 0
	tm := New(time.Second, false, func() { fired++ })
	tm.Activate(0)
	tm.Activate(800 * time.Millisecond)

	assert.False(t, tm.Update(time.Second))
	assert.True(t, tm.Update(1800*time.Millisecond))
	assert.Equal(t, 1, fired)
}

func TestTimerClearDisarmsWithoutFiring(t *testing.T) {
	fired := 0
	tm := New(100*time.Millisecond, false, func() { fired++ })
	tm.Activate(0)
	tm.Clear()

	assert.False(t, tm.Update(time.Second))
	assert.Equal(t, 0, fired)
	assert.Zero(t, tm.Remaining(time.Second))
}

func TestTimerCallbackMayReactivate(t *testing.T) {
	var tm *Timer
	fired := 0
	tm = New(100*time.Millisecond, false, func() {
		fired++
		tm.Activate(100 * time.Millisecond)
	})
	tm.Activate(0)

	tm.Update(100 * time.Millisecond)
	assert.True(t, tm.Pending())
	tm.Update(200 * time.Millisecond)
	assert.Equal(t, 2, fired)
}

func TestClockAdvance(t *testing.T) {
	var c Clock
	c.Advance(0.5)
	c.Advance(0.25)
	c.Advance(-1)

	assert.Equal(t, 750*time.Millisecond, c.Now())
	assert.Equal(t, uint64(3), c.Frame())
	assert.Zero(t, c.DT())
}

func TestClockFiresTimerOnExactFrame(t *testing.T) {
	var c Clock
	fired := 0
	tm := New(500*time.Millisecond, false, func() { fired++ })
	tm.Activate(c.Now())

	for i := 1; i <= 29; i++ {
		c.Advance(1.0 / 60)
		tm.Update(c.Now())
	}
	assert.Zero(t, fired, "fired before 500ms")

	c.Advance(1.0 / 60)
	tm.Update(c.Now())
	assert.Equal(t, 1, fired)
	assert.Equal(t, 500*time.Millisecond, c.Now())

	for i := 0; i < 30; i++ {
		c.Advance(1.0 / 60)
	}
	assert.Equal(t, time.Second, c.Now())
}
