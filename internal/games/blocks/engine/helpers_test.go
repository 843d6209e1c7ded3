package engine

import "time"

type rig struct {
	grid  *Grid
	clock *ManualClock
	rec   *Recorder
	lock  *LockTimer
	rot   *Rotator
	mov   *Mover
	check Checker
}

func newRig(w, h int) *rig {
	opts := DefaultOptions()
	r := &rig{
		grid:  NewGrid(w, h),
		clock: &ManualClock{},
		rec:   &Recorder{},
		check: NewChecker(opts.VisibleBufferRows),
	}
	// Start well past the initial rotation delay.
	r.clock.Set(10)
	r.lock = NewLockTimer(r.clock, 500*time.Millisecond, 15)
	r.rot = NewRotator(opts, r.grid, r.clock, r.lock, r.rec)
	r.mov = NewMover(opts, r.grid, r.lock, r.rec)
	return r
}

func (r *rig) fill(cells ...[2]int) {
	for _, c := range cells {
		r.grid.Set(c[0], c[1], int(KindZ))
	}
}

func (r *rig) fillRow(y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < r.grid.Width(); x++ {
		if !skip[x] {
			r.grid.Set(x, y, int(KindZ))
		}
	}
}

// nextRepeat moves the clock past the repeat delay.
func (r *rig) nextRepeat() {
	r.clock.Advance(250 * time.Millisecond)
}

func pieceAt(kind Kind, x, y int) *Piece {
	p := NewPiece(kind, false)
	p.SetPosition(x, y)
	return p
}

// stubBoard exposes fewer addressable rows than its height.
type stubBoard struct {
	w, h, rows int
}

func (b stubBoard) Width() int  { return b.w }
func (b stubBoard) Height() int { return b.h }
func (b stubBoard) Cell(int, int) int {
	return 0
}
func (b stubBoard) Addressable(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.rows
}
