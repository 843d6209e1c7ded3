package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownAutomaton(t *testing.T) {
	c := NewCooldown(100*time.Millisecond, 200*time.Millisecond)
	assert.Equal(t, CooldownIdle, c.State())
	assert.False(t, c.Ready(0.05))
	assert.True(t, c.Ready(0.1))

	c.Stamp(1.0)
	assert.Equal(t, CooldownJustRotated, c.State())
	assert.False(t, c.Ready(1.15))
	assert.True(t, c.Ready(1.25))

	c.Release()
	assert.Equal(t, CooldownIdle, c.State())
	assert.True(t, c.Ready(1.0))
}

func TestLockTimer(t *testing.T) {
	clock := &ManualClock{}
	lt := NewLockTimer(clock, 500*time.Millisecond, 2)
	p := pieceAt(KindO, 4, 19)

	assert.False(t, lt.Expired())
	lt.Start(p)
	assert.True(t, lt.Pending())

	clock.Advance(300 * time.Millisecond)
	lt.Start(p) // already pending, no restart
	clock.Advance(250 * time.Millisecond)
	assert.True(t, lt.Expired())

	lt.Clear()
	assert.False(t, lt.Pending())
	assert.False(t, lt.Expired())
}

func TestLockTimerResets(t *testing.T) {
	clock := &ManualClock{}
	lt := NewLockTimer(clock, 500*time.Millisecond, 2)
	p := pieceAt(KindO, 4, 18)
	lt.Start(p)

	// Same row: limited restarts.
	for range 2 {
		clock.Advance(400 * time.Millisecond)
		lt.Reset(p, true)
		assert.False(t, lt.Expired())
	}
	clock.Advance(400 * time.Millisecond)
	lt.Reset(p, true)
	clock.Advance(150 * time.Millisecond)
	assert.True(t, lt.Expired(), "restart budget exhausted")

	// Landing lower restarts the timer and the budget.
	p.SetPosition(4, 19)
	lt.Reset(p, true)
	assert.False(t, lt.Expired())
	clock.Advance(600 * time.Millisecond)
	assert.True(t, lt.Expired())

	// Leaving the ground cancels.
	lt.Reset(p, false)
	assert.False(t, lt.Pending())
}

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
	assert.GreaterOrEqual(t, a, 0.0)
}
