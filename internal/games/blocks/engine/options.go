package engine

import "time"

// Options carries the externally owned tuning the engine reads.
type Options struct {
	VisibleBufferRows  int
	RotateInitialDelay time.Duration
	RotateRepeatDelay  time.Duration
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		VisibleBufferRows:  2,
		RotateInitialDelay: 100 * time.Millisecond,
		RotateRepeatDelay:  200 * time.Millisecond,
	}
}
