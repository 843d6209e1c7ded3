package replay

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/storage"
)

const dropScript = `
game: blocks
seed: 42
steps:
  - tick: 5
    actions: [left, rotate_cw]
  - tick: 10
    actions: [hard_drop]
  - tick: 20
    actions: [soft-drop]
    repeat: 3
  - tick: 30
    actions: [HARD_DROP]
  - tick: 40
    actions: [right, right]
  - tick: 41
    actions: [hard_drop]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(dropScript))
	require.NoError(t, err)

	assert.Equal(t, "blocks", s.Game)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 60, s.TickRate)
	assert.Equal(t, 42, s.Ticks)

	frames := s.Frames()
	require.Len(t, frames, 42)
	assert.True(t, frames[5].Has(core.ActionLeft))
	assert.True(t, frames[5].Has(core.ActionRotateCW))
	for tick := 20; tick <= 23; tick++ {
		assert.True(t, frames[tick].Has(core.ActionSoftDrop), "tick %d", tick)
	}
	assert.True(t, frames[24].Empty())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "steps:\n  - tick: 1\n    actions: [jump]\n"},
		{"negative tick", "steps:\n  - tick: -1\n    actions: [left]\n"},
		{"bad yaml", "steps: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dropScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 6)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "replay: read")
}

func TestRunIsDeterministic(t *testing.T) {
	s, err := Parse([]byte(dropScript))
	require.NoError(t, err)

	first, err := Run(context.Background(), s, Options{Render: true})
	require.NoError(t, err)
	second, err := Run(context.Background(), s, Options{Render: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 42, first.Ticks)
	assert.False(t, first.GameOver)
	assert.Positive(t, first.Score, "three hard drops always score")
	assert.Contains(t, first.Screen, "Score:")
}

func TestRunUnknownGame(t *testing.T) {
	_, err := Run(context.Background(), &Script{Game: "nope", Ticks: 1}, Options{})
	assert.ErrorContains(t, err, "unknown game")
}

func TestRunCancelled(t *testing.T) {
	s, err := Parse([]byte(dropScript))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, s, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogs(t *testing.T) {
	s, err := Parse([]byte(dropScript))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	_, err = Run(context.Background(), s, Options{Logger: logger})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "replay finished")
	assert.Contains(t, buf.String(), "landing")
}

func TestSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replay.db"))
	require.NoError(t, err)
	defer store.Close()

	sum := Summary{
		Game:  "blocks",
		Seed:  9,
		Score: 2600,
		Lines: 3,
		Level: 1,
		Spins: []SpinEvent{
			{Tick: 10, Kind: "spin", Lines: 2, Level: 1, Points: 2400},
			{Tick: 90, Kind: "spin_mini", Lines: 1, Level: 1, Points: 100},
		},
	}
	require.NoError(t, Save(store, sum))

	high, err := store.HighScore("blocks")
	require.NoError(t, err)
	assert.Equal(t, 2600, high)

	counts, err := store.SpinCounts("blocks")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"spin": 1, "spin_mini": 1}, counts)
}
