package engine

// Mover performs gated translations of the active piece.
type Mover struct {
	checker Checker
	board   Board
	lock    LockDelay
	sink    Sink

	softDropping     bool
	softDropDistance int
}

// NewMover wires a mover to its collaborators. lock and sink may be nil.
func NewMover(opts Options, b Board, lock LockDelay, sink Sink) *Mover {
	if lock == nil {
		lock = nopLockDelay{}
	}
	if sink == nil {
		sink = nopSink{}
	}
	return &Mover{
		checker: NewChecker(opts.VisibleBufferRows),
		board:   b,
		lock:    lock,
		sink:    sink,
	}
}

// MoveLeft shifts p one column left.
func (m *Mover) MoveLeft(p *Piece) bool {
	return m.shift(p, -1, SideLeft)
}

// MoveRight shifts p one column right.
func (m *Mover) MoveRight(p *Piece) bool {
	return m.shift(p, 1, SideRight)
}

// MoveDown soft-drops p one row. The first call of a drop starts a new
// distance count.
func (m *Mover) MoveDown(p *Piece) bool {
	if p == nil || m.board == nil {
		return false
	}
	if !m.softDropping {
		m.softDropping = true
		m.softDropDistance = 0
	}
	if !m.try(p, 0, 1) {
		return false
	}
	m.softDropDistance++
	m.lock.Reset(p, m.checker.AtRest(p, m.board))
	m.stopPushing()
	return true
}

// Fall moves p one row under gravity without soft-drop accounting.
func (m *Mover) Fall(p *Piece) bool {
	if p == nil || m.board == nil {
		return false
	}
	if !m.try(p, 0, 1) {
		return false
	}
	m.lock.Reset(p, m.checker.AtRest(p, m.board))
	return true
}

// HardDrop moves p down until it rests and returns the rows travelled.
func (m *Mover) HardDrop(p *Piece) int {
	if p == nil || m.board == nil {
		return 0
	}
	bounds := p.Bounds()
	limit := m.board.Height() + SpawnBufferRows
	distance := 0
	for distance < limit && m.try(p, 0, 1) {
		m.sink.Notify(Event{Type: EventTrail, Trail: Trail{
			X:      p.x,
			Y:      p.y,
			Kind:   p.kind,
			Step:   distance,
			Width:  bounds.W,
			Height: bounds.H,
		}})
		distance++
	}
	m.stopPushing()
	m.EndSoftDrop()
	return distance
}

// CanMove reports whether p could translate by (dx, dy). p is not modified.
func (m *Mover) CanMove(p *Piece, dx, dy int) bool {
	if p == nil || m.board == nil {
		return false
	}
	trial := p.Clone()
	trial.Move(dx, dy)
	return m.checker.Valid(trial, m.board)
}

// TouchingWall reports whether p is blocked on either side.
func (m *Mover) TouchingWall(p *Piece) bool {
	if p == nil {
		return false
	}
	return !m.CanMove(p, -1, 0) || !m.CanMove(p, 1, 0)
}

// TouchingGround reports whether p is blocked below.
func (m *Mover) TouchingGround(p *Piece) bool {
	if p == nil {
		return false
	}
	return !m.CanMove(p, 0, 1)
}

// Colliding reports whether p overlaps something where it stands.
func (m *Mover) Colliding(p *Piece) bool {
	if p == nil {
		return false
	}
	return !m.checker.Valid(p, m.board)
}

// SoftDropping reports whether a soft drop is in progress.
func (m *Mover) SoftDropping() bool { return m.softDropping }

// SoftDropDistance returns rows moved in the current soft drop.
func (m *Mover) SoftDropDistance() int { return m.softDropDistance }

// EndSoftDrop stops soft-drop tracking.
func (m *Mover) EndSoftDrop() {
	m.softDropping = false
	m.softDropDistance = 0
}

// Reset clears per-piece state.
func (m *Mover) Reset() {
	m.EndSoftDrop()
}

func (m *Mover) shift(p *Piece, dx int, side Side) bool {
	if p == nil || m.board == nil {
		return false
	}
	if !m.try(p, dx, 0) {
		m.sink.Notify(Event{Type: EventWallPushStart, Side: side})
		return false
	}
	m.stopPushing()
	m.lock.Reset(p, m.checker.AtRest(p, m.board))
	return true
}

func (m *Mover) try(p *Piece, dx, dy int) bool {
	x, y := p.x, p.y
	p.Move(dx, dy)
	if m.checker.Valid(p, m.board) {
		return true
	}
	p.SetPosition(x, y)
	return false
}

func (m *Mover) stopPushing() {
	m.sink.Notify(Event{Type: EventWallPushStop, Side: SideLeft})
	m.sink.Notify(Event{Type: EventWallPushStop, Side: SideRight})
}
