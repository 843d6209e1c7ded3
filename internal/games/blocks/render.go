package blocks

import (
	"fmt"

	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/games/blocks/engine"
)

const cellWidth = 2 // Terminal cells per board column

func (g *Game) requiredWidth() int {
	return g.cfg.Board.Width*cellWidth + 2 + panelWidth
}

func (g *Game) requiredHeight() int {
	return hudHeight + g.cfg.Board.Height + 2
}

// boardRect returns the bordered playfield, centered horizontally with the panel.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.cfg.Board.Width*cellWidth + 2
	x := (dst.Width() - w - panelWidth) / 2
	return core.NewRect(max(0, x), hudHeight, w, g.cfg.Board.Height+2)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	frame := g.boardRect(dst)
	dst.DrawBox(frame, core.ColorGray)
	g.renderTrails(dst, frame)
	g.renderGrid(dst, frame)
	g.renderGhost(dst, frame)
	g.renderPiece(dst, frame)
	g.renderPanel(dst, frame)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Lines: %d  Level: %d", g.Title(), g.score, g.lines, g.level)
	dst.DrawText(0, 0, hud)
	dst.Fill(core.NewRect(0, 1, dst.Width(), 1), '─', core.ColorGray)
}

// drawBlock paints one board cell. Rows above the field are skipped.
func drawBlock(dst *core.Screen, frame core.Rect, x, y int, r rune, c core.Color) {
	if y < 0 {
		return
	}
	sx := frame.X + 1 + x*cellWidth
	sy := frame.Y + 1 + y
	for i := range cellWidth {
		dst.SetColored(sx+i, sy, r, c)
	}
}

func (g *Game) renderGrid(dst *core.Screen, frame core.Rect) {
	for y := range g.grid.Height() {
		for x := range g.grid.Width() {
			code := g.grid.Cell(x, y)
			if code == 0 {
				continue
			}
			r, c := codeStyle(code)
			drawBlock(dst, frame, x, y, r, c)
		}
	}
}

// codeStyle maps a grid occupancy code to its glyph and color.
func codeStyle(code int) (rune, core.Color) {
	if code == engine.GlassCode {
		return '▒', core.ColorBrightWhite
	}
	return '█', engine.Kind(code).Color()
}

func (g *Game) renderGhost(dst *core.Screen, frame core.Rect) {
	ghost := g.checker.Ghost(g.piece, g.grid)
	if ghost == nil || ghost.Y() == g.piece.Y() {
		return
	}
	for _, c := range ghost.Cells() {
		drawBlock(dst, frame, c.X, c.Y, '░', core.ColorDarkGray)
	}
}

func (g *Game) renderPiece(dst *core.Screen, frame core.Rect) {
	if g.piece == nil {
		return
	}
	glyph := '█'
	if g.piece.Glass() {
		glyph = '▒'
	}
	for _, c := range g.piece.Cells() {
		drawBlock(dst, frame, c.X, c.Y, glyph, c.Color)
	}
}

func (g *Game) renderTrails(dst *core.Screen, frame core.Rect) {
	for _, t := range g.trails {
		for _, pivot := range t.pivots {
			for _, off := range t.layout {
				drawBlock(dst, frame, pivot.X+off.X, pivot.Y+off.Y, '·', t.color)
			}
		}
	}
}

// renderPanel draws the preview queue and spin statistics to the right.
func (g *Game) renderPanel(dst *core.Screen, frame core.Rect) {
	x := frame.Right() + 2
	y := frame.Y

	dst.DrawText(x, y, "Next")
	y += 2
	for i, kind := range g.bag.Peek(g.cfg.Pieces.Preview) {
		p := engine.NewPiece(kind, g.bag.PeekGlass(i))
		bounds := p.Bounds()
		glyph := '█'
		if p.Glass() {
			glyph = '▒'
		}
		for _, off := range p.Layout() {
			px := x + (off.X-bounds.X)*cellWidth
			py := y + off.Y - bounds.Y
			for j := range cellWidth {
				dst.SetColored(px+j, py, glyph, p.Cells()[0].Color)
			}
		}
		y += bounds.H + 1
	}

	y++
	dst.DrawText(x, y, fmt.Sprintf("Pieces %d", g.pieces))
	y++
	if g.combo > 1 {
		dst.DrawTextColored(x, y, fmt.Sprintf("Combo x%d", g.combo-1), core.ColorYellow)
	}
	y++
	if n := g.rotator.ChainCount(); n > 1 {
		dst.DrawTextColored(x, y, fmt.Sprintf("Chain %d", n), core.ColorMagenta)
	}
	y++
	if g.banner != "" {
		dst.DrawTextColored(x, y, g.banner, core.ColorPurple)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	box := dst.Bounds().Centered(max(len(line1), len(line2))+4, 5)

	dst.Fill(box.Inset(1), ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box, box.Y+3, line2, core.ColorDefault)
}
