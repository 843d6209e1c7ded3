package engine

import (
	"math/rand"
)

// BagOptions configures the randomizer.
type BagOptions struct {
	// Extended adds one X piece to every bag.
	Extended bool
	// Glass marks one random piece per bag as glass.
	Glass bool
}

type bagEntry struct {
	kind  Kind
	glass bool
}

// Bag deals pieces from shuffled bags. Generators created with the same seed
// and options produce identical sequences.
type Bag struct {
	rng   *rand.Rand
	opts  BagOptions
	queue []bagEntry
}

// NewBag creates a seeded bag.
func NewBag(seed int64, opts BagOptions) *Bag {
	return &Bag{
		rng:  rand.New(rand.NewSource(seed)),
		opts: opts,
	}
}

// Next removes and returns the next piece in spawn orientation.
func (b *Bag) Next() *Piece {
	b.fill(1)
	e := b.queue[0]
	b.queue = b.queue[1:]
	return NewPiece(e.kind, e.glass)
}

// Peek returns the kinds of the next n pieces without consuming them.
func (b *Bag) Peek(n int) []Kind {
	b.fill(n)
	out := make([]Kind, n)
	for i := range n {
		out[i] = b.queue[i].kind
	}
	return out
}

// PeekGlass reports whether the i-th upcoming piece is glass.
func (b *Bag) PeekGlass(i int) bool {
	b.fill(i + 1)
	return b.queue[i].glass
}

func (b *Bag) fill(n int) {
	for len(b.queue) < n {
		b.refill()
	}
}

func (b *Bag) refill() {
	kinds := append([]Kind(nil), StandardKinds...)
	if b.opts.Extended {
		kinds = append(kinds, KindX)
	}
	// Fisher-Yates shuffle
	for i := len(kinds) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
	glassAt := -1
	if b.opts.Glass {
		glassAt = b.rng.Intn(len(kinds))
	}
	for i, k := range kinds {
		b.queue = append(b.queue, bagEntry{kind: k, glass: i == glassAt})
	}
}
