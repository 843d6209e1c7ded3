// Package engine implements the piece-transform and spin-classification core
// of the blocks game: collision tests, gated translations, SRS rotation with
// wall kicks, spin classification and triple-spin chaining.
//
// The engine has no I/O. Time comes from an injected Clock, side effects are
// reported to a Sink, and lock delay is delegated to a LockDelay.
package engine

import (
	"github.com/vovakirdan/fluxblocks/internal/core"
)

// Kind identifies a piece shape. The numeric value doubles as the occupancy
// code written to the board when the piece locks.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
	KindX // plus-shaped extended piece, always rotates with the glass table
)

// GlassCode is the occupancy code used for locked glass cells.
const GlassCode = 9

// StandardKinds lists the seven classic shapes in bag order.
var StandardKinds = []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

var kindNames = map[Kind]string{
	KindNone: "none",
	KindI:    "I",
	KindJ:    "J",
	KindL:    "L",
	KindO:    "O",
	KindS:    "S",
	KindT:    "T",
	KindZ:    "Z",
	KindX:    "X",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a kind from its single-letter name.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if k != KindNone && name == s {
			return k, true
		}
	}
	return KindNone, false
}

// Color returns the display color for a kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindT:
		return core.ColorPurple
	case KindZ:
		return core.ColorRed
	case KindX:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// spawnLayouts holds cell offsets relative to the pivot in spawn orientation.
// Rows grow downward.
var spawnLayouts = map[Kind][]core.Point{
	KindI: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	KindJ: {{X: -1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindL: {{X: 1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindO: {{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindS: {{X: 0, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}},
	KindT: {{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindZ: {{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindX: {{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
}

// Cell is one block of a piece. Rel is the offset from the pivot, X/Y the
// absolute board position.
type Cell struct {
	RelX, RelY int
	X, Y       int
	Color      core.Color
}

// Piece is a movable set of cells around a pivot.
type Piece struct {
	kind  Kind
	glass bool
	x, y  int
	cells []Cell
}

// NewPiece builds a piece of the given kind at the origin in spawn orientation.
// Returns nil for an unknown kind.
func NewPiece(kind Kind, glass bool) *Piece {
	if _, ok := spawnLayouts[kind]; !ok {
		return nil
	}
	p := &Piece{kind: kind, glass: glass || kind == KindX}
	p.ResetRotation()
	return p
}

// Kind returns the piece shape.
func (p *Piece) Kind() Kind { return p.kind }

// Glass reports whether the piece uses the glass kick table.
func (p *Piece) Glass() bool { return p.glass }

// X returns the pivot column.
func (p *Piece) X() int { return p.x }

// Y returns the pivot row.
func (p *Piece) Y() int { return p.y }

// Pivot returns the pivot as a point.
func (p *Piece) Pivot() core.Point { return core.Point{X: p.x, Y: p.y} }

// Code is the occupancy value written to the board when the piece locks.
func (p *Piece) Code() int {
	if p.glass && p.kind != KindX {
		return GlassCode
	}
	return int(p.kind)
}

// Cells returns a copy of the piece cells.
func (p *Piece) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// Move translates the piece by (dx, dy).
func (p *Piece) Move(dx, dy int) {
	p.SetPosition(p.x+dx, p.y+dy)
}

// SetPosition places the pivot at (x, y).
func (p *Piece) SetPosition(x, y int) {
	p.x, p.y = x, y
	p.sync()
}

// Rotate applies one clockwise quarter turn to every relative offset.
// O pieces keep their layout.
func (p *Piece) Rotate() {
	if p.kind == KindO {
		return
	}
	for i := range p.cells {
		c := &p.cells[i]
		c.RelX, c.RelY = -c.RelY, c.RelX
	}
	p.sync()
}

// ResetRotation restores the spawn layout, keeping the pivot.
func (p *Piece) ResetRotation() {
	layout := spawnLayouts[p.kind]
	color := p.kind.Color()
	if p.glass && p.kind != KindX {
		color = core.ColorWhite
	}
	p.cells = make([]Cell, len(layout))
	for i, off := range layout {
		p.cells[i] = Cell{RelX: off.X, RelY: off.Y, Color: color}
	}
	p.sync()
}

// Clone returns an independent copy.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.cells = p.Cells()
	return &c
}

// Bounds returns the bounding box of the relative offsets.
func (p *Piece) Bounds() core.Rect {
	return core.BoundsOf(p.Layout())
}

// Layout returns the relative offsets in cell order.
func (p *Piece) Layout() []core.Point {
	pts := make([]core.Point, len(p.cells))
	for i, c := range p.cells {
		pts[i] = core.Point{X: c.RelX, Y: c.RelY}
	}
	return pts
}

func (p *Piece) sync() {
	for i := range p.cells {
		p.cells[i].X = p.x + p.cells[i].RelX
		p.cells[i].Y = p.y + p.cells[i].RelY
	}
}
