package engine

import "time"

// LockDelay is told about every successful move so it can restart or cancel
// the grace period before a resting piece locks.
type LockDelay interface {
	Reset(p *Piece, atRest bool)
}

// LockTimer is the default LockDelay.
//
// A move that leaves the piece airborne cancels the pending lock. A move that
// lands it on a new row restarts the timer. Moves on the same row restart the
// timer at most maxResets times per row.
type LockTimer struct {
	clock     Clock
	delay     float64
	maxResets int

	pending bool
	started float64
	landedY int
	resets  int
}

// NewLockTimer creates an idle timer.
func NewLockTimer(clock Clock, delay time.Duration, maxResets int) *LockTimer {
	return &LockTimer{
		clock:     clock,
		delay:     delay.Seconds(),
		maxResets: maxResets,
		landedY:   -1,
	}
}

// Start begins the grace period if none is pending.
func (t *LockTimer) Start(p *Piece) {
	if t.pending || p == nil {
		return
	}
	t.pending = true
	t.started = t.clock.Now()
	t.landedY = p.Y()
	t.resets = 0
}

// Reset implements LockDelay.
func (t *LockTimer) Reset(p *Piece, atRest bool) {
	if !atRest {
		t.pending = false
		return
	}
	if p == nil {
		return
	}
	if p.Y() != t.landedY {
		t.started = t.clock.Now()
		t.landedY = p.Y()
		t.resets = 0
		return
	}
	if t.pending && t.resets < t.maxResets {
		t.started = t.clock.Now()
		t.resets++
	}
}

// Pending reports whether a lock is scheduled.
func (t *LockTimer) Pending() bool { return t.pending }

// Expired reports whether the pending lock is due.
func (t *LockTimer) Expired() bool {
	if !t.pending {
		return false
	}
	return t.clock.Now()-t.started >= t.delay
}

// Clear cancels any pending lock, used after a piece locks or spawns.
func (t *LockTimer) Clear() {
	t.pending = false
	t.landedY = -1
	t.resets = 0
}

type nopLockDelay struct{}

func (nopLockDelay) Reset(*Piece, bool) {}
