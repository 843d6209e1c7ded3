package engine

import "fmt"

// SpinKind classifies a rotation for bonus scoring.
type SpinKind int

const (
	SpinNone SpinKind = iota
	SpinFull
	SpinMini
	SpinTriple
	SpinTripleMini
)

func (k SpinKind) String() string {
	switch k {
	case SpinFull:
		return "spin"
	case SpinMini:
		return "spin_mini"
	case SpinTriple:
		return "triple_spin"
	case SpinTripleMini:
		return "triple_spin_mini"
	default:
		return "none"
	}
}

// SpinResult is a classification together with the rows it cleared.
type SpinResult struct {
	Kind         SpinKind
	LinesCleared int
	Reason       string
}

var diagonals = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

var neighbours = [8][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

func occupied(b Board, x, y int) bool {
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		return false
	}
	return b.Cell(x, y) != 0
}

// Confined reports whether the pivot of p is hemmed in by a wall, the floor
// area, or a neighbouring block.
func Confined(p *Piece, b Board) bool {
	if p == nil || b == nil {
		return false
	}
	x, y := p.x, p.y
	w, h := b.Width(), b.Height()
	if x <= 1 || x >= w-3 || y >= h-3 || y >= h-4 {
		return true
	}
	for _, n := range neighbours {
		if occupied(b, x+n[0], y+n[1]) {
			return true
		}
	}
	return false
}

// FilledCorners counts occupied diagonal neighbours of the pivot.
func FilledCorners(p *Piece, b Board) int {
	if p == nil || b == nil {
		return 0
	}
	n := 0
	for _, d := range diagonals {
		if occupied(b, p.x+d[0], p.y+d[1]) {
			n++
		}
	}
	return n
}

// Classify decides whether the current placement of p, just after a
// successful rotation, is a spin.
func Classify(p *Piece, b Board) SpinKind {
	if p == nil || b == nil || p.kind != KindT {
		return SpinNone
	}
	if !Confined(p, b) {
		return SpinNone
	}
	switch corners := FilledCorners(p, b); {
	case corners >= 3:
		return SpinFull
	case corners == 2:
		return SpinMini
	default:
		return SpinNone
	}
}

// ClassifyResult wraps Classify with the cleared line count and a reason
// suitable for logs.
func ClassifyResult(p *Piece, b Board, lines int) SpinResult {
	kind := Classify(p, b)
	return SpinResult{Kind: kind, LinesCleared: lines, Reason: spinReason(p, b, kind)}
}

func spinReason(p *Piece, b Board, kind SpinKind) string {
	switch {
	case p == nil || b == nil:
		return "no piece"
	case p.kind != KindT:
		return fmt.Sprintf("%s piece", p.kind)
	case !Confined(p, b):
		return "not confined"
	case kind == SpinNone:
		return fmt.Sprintf("%d corners", FilledCorners(p, b))
	default:
		return fmt.Sprintf("%d corners at (%d,%d)", FilledCorners(p, b), p.x, p.y)
	}
}
