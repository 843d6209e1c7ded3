package engine

// Checker holds the collision rules. It never mutates its arguments.
type Checker struct {
	// VisibleBufferRows is subtracted from the board height to find the first
	// non-addressable row that counts as floor.
	VisibleBufferRows int
}

// NewChecker returns a Checker with the given visible buffer.
func NewChecker(visibleBufferRows int) Checker {
	return Checker{VisibleBufferRows: visibleBufferRows}
}

// Valid reports whether every cell of p may occupy its current position.
func (c Checker) Valid(p *Piece, b Board) bool {
	if p == nil || b == nil {
		return false
	}
	w, h := b.Width(), b.Height()
	for _, cell := range p.cells {
		if cell.X < 0 || cell.X >= w || cell.Y < -SpawnBufferRows {
			return false
		}
		if b.Addressable(cell.X, cell.Y) {
			if b.Cell(cell.X, cell.Y) != 0 {
				return false
			}
			continue
		}
		if cell.Y >= h-c.VisibleBufferRows {
			return false
		}
	}
	return true
}

// WallCollision reports whether any cell is past the side walls or the floor.
// The top is ignored.
func (c Checker) WallCollision(p *Piece, width, height int) bool {
	if p == nil {
		return false
	}
	for _, cell := range p.cells {
		if cell.X < 0 || cell.X >= width || cell.Y >= height {
			return true
		}
	}
	return false
}

// WithinBounds reports whether every cell lies inside the board including the
// hidden spawn buffer.
func (c Checker) WithinBounds(p *Piece, width, height int) bool {
	if p == nil {
		return false
	}
	for _, cell := range p.cells {
		if cell.X < 0 || cell.X >= width || cell.Y < -SpawnBufferRows || cell.Y >= height {
			return false
		}
	}
	return true
}

// DistanceToCollision counts how many (dx, dy) steps a copy of p can take
// before it becomes invalid. The walk is bounded by the board extent.
func (c Checker) DistanceToCollision(p *Piece, b Board, dx, dy int) int {
	if p == nil || b == nil || (dx == 0 && dy == 0) {
		return 0
	}
	trial := p.Clone()
	limit := b.Width() + b.Height() + SpawnBufferRows
	steps := 0
	for steps < limit {
		trial.Move(dx, dy)
		if !c.Valid(trial, b) {
			break
		}
		steps++
	}
	return steps
}

// AtRest reports whether p cannot fall one more row.
func (c Checker) AtRest(p *Piece, b Board) bool {
	if p == nil || b == nil {
		return false
	}
	trial := p.Clone()
	trial.Move(0, 1)
	return !c.Valid(trial, b)
}

// CanSpawn reports whether p would be valid with its pivot at (x, y).
func (c Checker) CanSpawn(p *Piece, b Board, x, y int) bool {
	if p == nil || b == nil {
		return false
	}
	trial := p.Clone()
	trial.SetPosition(x, y)
	return c.Valid(trial, b)
}

// Ghost returns a copy of p dropped to its resting row.
func (c Checker) Ghost(p *Piece, b Board) *Piece {
	if p == nil || b == nil {
		return nil
	}
	ghost := p.Clone()
	ghost.Move(0, c.DistanceToCollision(p, b, 0, 1))
	return ghost
}
