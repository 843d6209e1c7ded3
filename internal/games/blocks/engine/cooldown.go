package engine

import "time"

// CooldownState is the rotation key automaton state.
type CooldownState int

const (
	// CooldownIdle waits for the first rotation of a key press.
	CooldownIdle CooldownState = iota
	// CooldownJustRotated repeats at the slower repeat delay.
	CooldownJustRotated
)

func (s CooldownState) String() string {
	if s == CooldownJustRotated {
		return "just_rotated"
	}
	return "idle"
}

// Cooldown gates rotation requests by elapsed time since the last rotation.
// The timestamp starts at zero, so requests during the first initial delay
// of the clock are refused.
type Cooldown struct {
	initial float64
	repeat  float64
	last    float64
	state   CooldownState
}

// NewCooldown creates an idle cooldown.
func NewCooldown(initial, repeat time.Duration) *Cooldown {
	return &Cooldown{
		initial: initial.Seconds(),
		repeat:  repeat.Seconds(),
	}
}

// State returns the automaton state.
func (c *Cooldown) State() CooldownState { return c.state }

// Ready reports whether a rotation may happen at now.
func (c *Cooldown) Ready(now float64) bool {
	delay := c.initial
	if c.state == CooldownJustRotated {
		delay = c.repeat
	}
	return now-c.last >= delay
}

// Stamp records a successful rotation.
func (c *Cooldown) Stamp(now float64) {
	c.last = now
	c.state = CooldownJustRotated
}

// Release handles the rotate key being let go.
func (c *Cooldown) Release() {
	c.last = 0
	c.state = CooldownIdle
}
