package engine

// Rotator performs SRS rotations with wall kicks and classifies the result.
type Rotator struct {
	checker  Checker
	board    Board
	clock    Clock
	lock     LockDelay
	sink     Sink
	cooldown *Cooldown
	chain    ChainTracker

	lastSpin  SpinKind
	lastChain SpinKind
}

// NewRotator wires a rotator to its collaborators. lock and sink may be nil.
func NewRotator(opts Options, b Board, clock Clock, lock LockDelay, sink Sink) *Rotator {
	if lock == nil {
		lock = nopLockDelay{}
	}
	if sink == nil {
		sink = nopSink{}
	}
	if clock == nil {
		clock = NewMonotonicClock()
	}
	return &Rotator{
		checker:  NewChecker(opts.VisibleBufferRows),
		board:    b,
		clock:    clock,
		lock:     lock,
		sink:     sink,
		cooldown: NewCooldown(opts.RotateInitialDelay, opts.RotateRepeatDelay),
	}
}

// RotateCW rotates p a quarter turn clockwise.
func (r *Rotator) RotateCW(p *Piece) bool {
	if !r.canRotate(p) {
		return false
	}
	return r.attempt(p, 1)
}

// RotateCCW rotates p a quarter turn counter-clockwise as three clockwise
// transforms.
func (r *Rotator) RotateCCW(p *Piece) bool {
	if !r.canRotate(p) {
		return false
	}
	return r.attempt(p, 3)
}

// Rotate180 is two sequential RotateCW calls, each behind the cooldown
// gate. With a nonzero repeat delay the second call is refused and the
// piece keeps the first quarter turn.
func (r *Rotator) Rotate180(p *Piece) bool {
	if !r.RotateCW(p) {
		return false
	}
	return r.RotateCW(p)
}

// Validate reports whether rotating p would fit without kicks. p is not
// modified.
func (r *Rotator) Validate(p *Piece, clockwise bool) bool {
	if p == nil || r.board == nil {
		return false
	}
	trial := p.Clone()
	turns := 1
	if !clockwise {
		turns = 3
	}
	for range turns {
		trial.Rotate()
	}
	return r.checker.Valid(trial, r.board)
}

// LastSpin returns the classification of the last successful rotation.
func (r *Rotator) LastSpin() SpinKind { return r.lastSpin }

// LastChain returns the chain result of the last successful rotation.
func (r *Rotator) LastChain() SpinKind { return r.lastChain }

// ChainCount returns the current triple-spin run length.
func (r *Rotator) ChainCount() int { return r.chain.Count() }

// CooldownState exposes the key automaton state.
func (r *Rotator) CooldownState() CooldownState { return r.cooldown.State() }

// ClearLastSpin forgets the cached classifications. Callers do this after
// the piece translates so that only a rotation right before locking counts.
func (r *Rotator) ClearLastSpin() {
	r.lastSpin = SpinNone
	r.lastChain = SpinNone
}

// ReleaseKey signals that the rotate key went up.
func (r *Rotator) ReleaseKey() {
	r.cooldown.Release()
}

// Reset prepares for a new piece.
func (r *Rotator) Reset() {
	r.cooldown.Release()
	r.chain.Reset()
	r.ClearLastSpin()
}

func (r *Rotator) canRotate(p *Piece) bool {
	if p == nil || r.board == nil {
		return false
	}
	return r.cooldown.Ready(r.clock.Now())
}

func (r *Rotator) attempt(p *Piece, turns int) bool {
	origin := p.Pivot()
	for range turns {
		p.Rotate()
	}
	if r.checker.Valid(p, r.board) || r.kick(p, origin.X, origin.Y) {
		r.succeed(p)
		return true
	}
	for range 4 - turns {
		p.Rotate()
	}
	p.SetPosition(origin.X, origin.Y)
	r.ClearLastSpin()
	r.chain.Reset()
	return false
}

func (r *Rotator) kick(p *Piece, x, y int) bool {
	for _, off := range Kicks(FamilyOf(p)) {
		p.SetPosition(x+off.DX, y+off.DY)
		if r.checker.Valid(p, r.board) {
			return true
		}
	}
	p.SetPosition(x, y)
	return false
}

func (r *Rotator) succeed(p *Piece) {
	result := ClassifyResult(p, r.board, 0)
	r.lastSpin = result.Kind
	r.lastChain = r.chain.Update(p, r.board, result.Kind)

	r.cooldown.Stamp(r.clock.Now())
	r.lock.Reset(p, r.checker.AtRest(p, r.board))

	if r.lastSpin != SpinNone || r.lastChain != SpinNone {
		r.sink.Notify(Event{Type: EventSpin, Spin: result, Chain: r.lastChain})
	}
}
