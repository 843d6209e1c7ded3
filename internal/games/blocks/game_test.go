package blocks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fluxblocks/internal/config"
	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/games/blocks/engine"
	"github.com/vovakirdan/fluxblocks/internal/registry"
)

func testConfig() config.BlocksConfig {
	cfg := config.DefaultBlocksConfig()
	cfg.Pieces.Glass = false
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(ModeStandard, testConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	require.False(t, g.tooSmall)
	require.NotNil(t, g.piece)
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// placeI swaps the active piece for a horizontal I over columns 3..6.
func placeI(g *Game) {
	p := engine.NewPiece(engine.KindI, false)
	p.SetPosition(4, 1)
	g.piece = p
}

func fillBottomRowExcept(g *Game, code int, skip ...int) {
	y := g.grid.Height() - 1
	for x := range g.grid.Width() {
		if !containsInt(skip, x) {
			g.grid.Set(x, y, code)
		}
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"blocks", "blocks_extended"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := map[int][]core.Action{
		10:  {core.ActionLeft},
		20:  {core.ActionRotateCW},
		30:  {core.ActionHardDrop},
		45:  {core.ActionRight, core.ActionRight},
		60:  {core.ActionSoftDrop},
		61:  {core.ActionSoftDrop},
		80:  {core.ActionRotateCCW},
		100: {core.ActionHardDrop},
		140: {core.ActionRotate180},
		200: {core.ActionHardDrop},
	}
	for i := range 600 {
		in := press(script[i]...)
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.GreaterOrEqual(t, g1.Snapshot().Pieces, 3)
}

func TestHardDropScoresAndLocks(t *testing.T) {
	g := newTestGame(t, 7)
	distance := g.checker.DistanceToCollision(g.piece, g.grid, 0, 1)
	require.Positive(t, distance)

	g.Step(press(core.ActionHardDrop))

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Pieces)
	assert.Equal(t, 2*distance, snap.Score)
	assert.Equal(t, 4, snap.Filled)
	assert.Equal(t, 1, snap.PieceY, "next piece spawns at the top")
}

func TestLineClear(t *testing.T) {
	g := newTestGame(t, 7)
	placeI(g)
	fillBottomRowExcept(g, int(engine.KindO), 3, 4, 5, 6)

	g.Step(press(core.ActionHardDrop))

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Lines)
	assert.Equal(t, 1, snap.LastClear)
	assert.Equal(t, 0, snap.Filled)
	assert.Equal(t, 2*18+100, snap.Score)
	assert.Equal(t, 1, snap.Combo)
}

func TestGlassRowDoublesLineScore(t *testing.T) {
	g := newTestGame(t, 7)
	placeI(g)
	fillBottomRowExcept(g, int(engine.KindO), 3, 4, 5, 6)
	g.grid.Set(0, g.grid.Height()-1, engine.GlassCode)

	g.Step(press(core.ActionHardDrop))

	assert.Equal(t, 2*18+200, g.Snapshot().Score)
}

func TestComboAccumulates(t *testing.T) {
	g := newTestGame(t, 7)

	placeI(g)
	fillBottomRowExcept(g, int(engine.KindO), 3, 4, 5, 6)
	g.Step(press(core.ActionHardDrop))
	first := g.Snapshot().Score

	placeI(g)
	fillBottomRowExcept(g, int(engine.KindO), 3, 4, 5, 6)
	g.Step(press(core.ActionHardDrop))

	assert.Equal(t, 2*18+100+50, g.Snapshot().Score-first)
	assert.Equal(t, 2, g.Snapshot().Combo)
}

func TestSpinLockStartsNextPieceWithEmptyChain(t *testing.T) {
	g := newTestGame(t, 5)

	// T slot at the floor with three of the four pivot corners filled
	for _, c := range [][2]int{{3, 17}, {3, 19}, {5, 19}} {
		g.grid.Set(c[0], c[1], int(engine.KindO))
	}
	p := engine.NewPiece(engine.KindT, false)
	p.SetPosition(4, 18)
	g.piece = p

	require.True(t, g.rotator.RotateCW(p))
	require.Equal(t, engine.SpinFull, g.rotator.LastSpin())
	require.Equal(t, 1, g.rotator.ChainCount())

	g.lockPiece(engine.LandingNormal)

	assert.Equal(t, 1, g.SpinCounts()[engine.SpinFull])
	assert.Zero(t, g.rotator.ChainCount(), "chain must not carry into the next piece")
	assert.Equal(t, engine.SpinNone, g.rotator.LastSpin())
	assert.NotSame(t, p, g.piece)
}

func TestLevelFollowsLines(t *testing.T) {
	cfg := testConfig()
	cfg.Scoring.LinesPerLevel = 1
	g := NewWithConfig(ModeStandard, cfg)
	g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})

	placeI(g)
	fillBottomRowExcept(g, int(engine.KindO), 3, 4, 5, 6)
	g.Step(press(core.ActionHardDrop))

	assert.Equal(t, 2, g.State().Level)
}

func TestGravityAndLockDelay(t *testing.T) {
	g := newTestGame(t, 99)
	startY := g.piece.Y()

	// 800ms gravity at 60 ticks per second
	for range 50 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, startY+1, g.piece.Y())

	for range 3000 {
		g.Step(core.NewInputFrame())
		if g.pieces > 0 {
			break
		}
	}
	assert.Equal(t, 1, g.pieces, "resting piece should lock after the delay")
}

func TestSoftDropScoresPerRow(t *testing.T) {
	g := newTestGame(t, 5)
	startY := g.piece.Y()

	for range 3 {
		g.Step(press(core.ActionSoftDrop))
	}

	assert.Equal(t, startY+3, g.piece.Y())
	assert.Equal(t, 3, g.score)
	assert.True(t, g.mover.SoftDropping())

	g.Step(core.NewInputFrame())
	assert.False(t, g.mover.SoftDropping())
}

func TestMoveAndRotate(t *testing.T) {
	g := newTestGame(t, 11)
	x := g.piece.X()

	g.Step(press(core.ActionLeft))
	assert.Equal(t, x-1, g.piece.X())

	g.Step(press(core.ActionRight))
	g.Step(press(core.ActionRight))
	assert.Equal(t, x+1, g.piece.X())

	before := g.piece.Layout()
	g.Step(press(core.ActionRotateCW))
	if g.piece.Kind() != engine.KindO {
		assert.NotEqual(t, before, g.piece.Layout())
	}
}

func TestTopOut(t *testing.T) {
	g := newTestGame(t, 21)
	for y := range 4 {
		for x := 1; x < g.grid.Width(); x++ {
			g.grid.Set(x, y, int(engine.KindO))
		}
	}
	g.spawn()

	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Input is ignored until restart
	tick := g.Snapshot().Pieces
	g.Step(press(core.ActionHardDrop))
	assert.Equal(t, tick, g.Snapshot().Pieces)

	g.Step(press(core.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.True(t, g.grid.Empty())
	assert.Zero(t, g.State().Score)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 8)
	g.Step(press(core.ActionPause))
	require.True(t, g.State().Paused)

	y := g.piece.Y()
	for range 200 {
		g.Step(press(core.ActionSoftDrop))
	}
	assert.Equal(t, y, g.piece.Y())
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(press(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestObserveReceivesScoreEvents(t *testing.T) {
	var rec engine.Recorder
	g := NewWithConfig(ModeStandard, testConfig())
	g.Observe(&rec)
	g.Reset(core.RuntimeConfig{Seed: 4, ScreenW: 80, ScreenH: 24})

	g.Step(press(core.ActionHardDrop))

	scores := rec.OfType(engine.EventScore)
	require.Len(t, scores, 1)
	assert.Equal(t, g.State().Score, scores[0].Points+2*len(rec.OfType(engine.EventTrail)))
	assert.Len(t, rec.OfType(engine.EventLanding), 1)
	assert.Equal(t, engine.LandingHard, rec.OfType(engine.EventLanding)[0].Landing)
}

func TestExtendedModeDealsX(t *testing.T) {
	g := NewWithConfig(ModeExtended, testConfig())
	g.Reset(core.RuntimeConfig{Seed: 6, ScreenW: 80, ScreenH: 24})

	kinds := g.bag.Peek(16)
	assert.Contains(t, kinds, engine.KindX)
	assert.Equal(t, "blocks_extended", g.ID())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 2)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Score: 0")
	frame := g.boardRect(screen)
	assert.Equal(t, '┌', screen.Get(frame.X, frame.Y))
	assert.Contains(t, screen.String(), "Next")
	assert.Contains(t, screen.String(), "██")
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(ModeStandard, testConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 12})
	screen := core.NewScreen(30, 12)
	g.Render(screen)

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))
}

func TestBannerText(t *testing.T) {
	assert.Equal(t, "T-SPIN DOUBLE", bannerText(engine.SpinFull, 2))
	assert.Equal(t, "T-SPIN MINI", bannerText(engine.SpinMini, 0))
	assert.Equal(t, "TRIPLE SPIN SINGLE", bannerText(engine.SpinTriple, 1))
	assert.Empty(t, bannerText(engine.SpinNone, 3))
}
