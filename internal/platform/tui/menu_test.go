package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fluxblocks/internal/config"
	"github.com/vovakirdan/fluxblocks/internal/core"

	_ "github.com/vovakirdan/fluxblocks/internal/games/blocks"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7}
}

func sendMenu(m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuSelectsMode(t *testing.T) {
	m := NewMenuModel(testRuntime())
	require.Len(t, m.items, 2)
	assert.Equal(t, "blocks", m.items[0].GameID)

	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "blocks_extended", m.Selected().GameID)
	assert.NotNil(t, cmd)
}

func TestMenuCyclesPreset(t *testing.T) {
	m := NewMenuModel(testRuntime())
	assert.Equal(t, config.DifficultyNormal, m.Preset())

	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, m.Preset())

	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, config.DifficultyEasy, m.Preset())

	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, config.DifficultyFixed, m.Preset())
	assert.Contains(t, m.View(), "Difficulty: < fixed >")
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(testRuntime())
	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())

	m = NewMenuModel(testRuntime())
	m, _ = sendMenu(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(testRuntime())
	m, _ = sendMenu(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
	assert.Contains(t, m.View(), "F L U X B L O C K S")
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}
