package engine

import (
	"github.com/kamstrup/intmap"
)

// SpawnBufferRows is the number of hidden rows above row 0. Cells in
// rows [-SpawnBufferRows, 0) are always passable.
const SpawnBufferRows = 4

// Board is the occupancy grid consumed by the engine.
type Board interface {
	Width() int
	Height() int
	// Cell returns the occupancy code at (x, y); 0 means empty.
	Cell(x, y int) int
	// Addressable reports whether (x, y) lies inside the stored rows.
	Addressable(x, y int) bool
}

// Grid is a dense Board with per-row fill counts.
type Grid struct {
	width  int
	height int
	cells  []int
	fill   *intmap.Map[int, int] // row -> occupied cells, absent when empty
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
		fill:   intmap.New[int, int](height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of addressable rows.
func (g *Grid) Height() int { return g.height }

// Addressable reports whether (x, y) is a stored cell.
func (g *Grid) Addressable(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the occupancy code at (x, y), or 0 outside the grid.
func (g *Grid) Cell(x, y int) int {
	if !g.Addressable(x, y) {
		return 0
	}
	return g.cells[y*g.width+x]
}

// Set writes an occupancy code. Writes outside the grid are ignored.
func (g *Grid) Set(x, y, code int) {
	if !g.Addressable(x, y) {
		return
	}
	i := y*g.width + x
	was := g.cells[i] != 0
	g.cells[i] = code
	switch now := code != 0; {
	case now && !was:
		g.addFill(y, 1)
	case !now && was:
		g.addFill(y, -1)
	}
}

// RowFill returns the number of occupied cells in row y.
func (g *Grid) RowFill(y int) int {
	n, _ := g.fill.Get(y)
	return n
}

// Lock writes the piece cells into the grid. It returns false when any cell
// was left in the hidden spawn buffer, which callers treat as a lock-out.
func (g *Grid) Lock(p *Piece) bool {
	if p == nil {
		return true
	}
	inside := true
	for _, c := range p.cells {
		if !g.Addressable(c.X, c.Y) {
			inside = false
			continue
		}
		g.Set(c.X, c.Y, p.Code())
	}
	return inside
}

// RowHas reports whether row y contains a cell with the given code.
func (g *Grid) RowHas(y, code int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		if c == code {
			return true
		}
	}
	return false
}

// FullRows returns the indices of completely filled rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.height; y++ {
		if g.RowFill(y) == g.width {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullRows removes every full row, shifting the rows above down.
// Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		n := g.RowFill(read)
		if n == g.width {
			cleared++
			continue
		}
		if write != read {
			copy(g.cells[write*g.width:(write+1)*g.width], g.cells[read*g.width:(read+1)*g.width])
			g.putFill(write, n)
		}
		write--
	}
	for ; write >= 0; write-- {
		clear(g.cells[write*g.width : (write+1)*g.width])
		g.fill.Del(write)
	}
	return cleared
}

// Reset empties the grid.
func (g *Grid) Reset() {
	clear(g.cells)
	g.fill.Clear()
}

// Empty reports whether no cell is occupied.
func (g *Grid) Empty() bool {
	for y := 0; y < g.height; y++ {
		if g.RowFill(y) > 0 {
			return false
		}
	}
	return true
}

func (g *Grid) addFill(y, delta int) {
	g.putFill(y, g.RowFill(y)+delta)
}

func (g *Grid) putFill(y, n int) {
	if n <= 0 {
		g.fill.Del(y)
		return
	}
	g.fill.Put(y, n)
}
