package engine

import "github.com/vovakirdan/fluxblocks/internal/core"

// ChainTracker escalates three consecutive spins at nearly the same pivot
// into a triple spin.
type ChainTracker struct {
	last    core.Point
	hasLast bool
	count   int
}

// Count returns the current run length.
func (c *ChainTracker) Count() int { return c.count }

// Update feeds the classification of a successful rotation and returns the
// chain result.
func (c *ChainTracker) Update(p *Piece, b Board, kind SpinKind) SpinKind {
	if p == nil || b == nil || p.kind != KindT || kind == SpinNone || !Confined(p, b) {
		c.Reset()
		return SpinNone
	}

	pivot := p.Pivot()
	if c.hasLast && pivot.Chebyshev(c.last) <= 1 {
		c.count++
	} else {
		c.count = 1
	}
	c.last = pivot
	c.hasLast = true

	if c.count < 3 {
		return SpinNone
	}
	switch kind {
	case SpinFull:
		return SpinTriple
	case SpinMini:
		return SpinTripleMini
	default:
		return SpinNone
	}
}

// Reset clears the run.
func (c *ChainTracker) Reset() {
	c.hasLast = false
	c.last = core.Point{}
	c.count = 0
}
