package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, H - shift piece left
	ActionRight            // Right arrow, L - shift piece right
	ActionSoftDrop         // Down arrow, J - soft drop while held
	ActionHardDrop         // Space - drop piece to rest and lock
	ActionRotateCW         // Up arrow, X, K - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionRotate180        // A - rotate half a turn
	ActionConfirm          // Enter - confirm selection
	ActionBack             // B - go back
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionSoftDrop:  "soft_drop",
	ActionHardDrop:  "hard_drop",
	ActionRotateCW:  "rotate_cw",
	ActionRotateCCW: "rotate_ccw",
	ActionRotate180: "rotate_180",
	ActionConfirm:   "confirm",
	ActionBack:      "back",
	ActionRestart:   "restart",
	ActionQuit:      "quit",
	ActionPause:     "pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves an action by the name String returns.
// Matching is case-insensitive and accepts '-' in place of '_'.
func ParseAction(name string) (Action, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for a, n := range actionNames {
		if n == norm {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
