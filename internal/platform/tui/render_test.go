package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/fluxblocks/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score")
	s.DrawTextColored(0, 1, "██", core.ColorCyan)
	s.DrawText(2, 1, "..")

	out := RenderScreen(s)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "██")
}

func TestStyleForDefault(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.ColorDefault).Render("x"))
}
