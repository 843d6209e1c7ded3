// Package blocks implements a falling-block puzzle game on top of the engine
// package: bag randomizer, gravity, lock delay, SRS rotation with spin
// detection, line clears, and scoring.
package blocks

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/fluxblocks/internal/config"
	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/games/blocks/engine"
	"github.com/vovakirdan/fluxblocks/internal/registry"
)

// Mode selects the piece set.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeExtended Mode = "extended"
)

const (
	hudHeight   = 2  // HUD line plus separator
	panelWidth  = 16 // Side panel with preview and stats
	bannerTicks = 90 // ~1.5 seconds at 60 FPS
	trailTicks  = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedStartLevel is consumed by the next Reset.
var selectedStartLevel int

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the starting level. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game implements the blocks game.
type Game struct {
	mode     Mode
	override *config.BlocksConfig
	preset   config.DifficultyPreset

	cfg        config.BlocksConfig
	difficulty *config.DifficultyManager
	scores     engine.ScoreTable
	rng        *rand.Rand
	tick       uint64
	tickMs     float64

	// Engine
	clock   *engine.ManualClock
	grid    *engine.Grid
	checker engine.Checker
	bag     *engine.Bag
	lock    *engine.LockTimer
	rotator *engine.Rotator
	mover   *engine.Mover
	sinks   engine.Fanout
	observe engine.Sink

	piece     *engine.Piece
	fallAccum float64

	// Progress
	score      int
	lines      int
	startLevel int
	level      int
	combo      int
	pieces     int
	spins      map[engine.SpinKind]int
	lastClear  int

	// Effects
	banner      string
	bannerTicks int
	trails      []trail
	dropLayout  []core.Point
	dropColor   core.Color
	dropPivots  []core.Point

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// trail is the fading afterimage of a hard drop.
type trail struct {
	layout []core.Point
	pivots []core.Point
	color  core.Color
	ttl    int
}

// New creates a standard game.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewExtended creates a game that deals the X piece in every bag.
func NewExtended() *Game {
	return &Game{mode: ModeExtended}
}

// NewWithConfig creates a game that ignores config files and presets.
func NewWithConfig(mode Mode, cfg config.BlocksConfig) *Game {
	return &Game{mode: mode, override: &cfg}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_extended", func() registry.Game {
		return NewExtended()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeExtended {
		return "blocks_extended"
	}
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeExtended {
		return "Blocks (Extended)"
	}
	return "Blocks"
}

// Observe adds a sink that receives every engine event, including the score
// event emitted when a piece locks. Must be called before Reset.
func (g *Game) Observe(s engine.Sink) {
	g.observe = s
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	if g.mode == ModeExtended {
		g.cfg.Pieces.Extended = true
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.scores = scoreTable(g.cfg.Scoring)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickMs = rc.TickDuration()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	opts := engine.Options{
		VisibleBufferRows:  g.cfg.Board.VisibleBufferRows,
		RotateInitialDelay: g.cfg.RotateInitialDelay(),
		RotateRepeatDelay:  g.cfg.RotateRepeatDelay(),
	}
	g.clock = &engine.ManualClock{}
	g.clock.Set(1) // Start past the initial rotate delay
	g.grid = engine.NewGrid(g.cfg.Board.Width, g.cfg.Board.Height)
	g.checker = engine.NewChecker(opts.VisibleBufferRows)
	g.bag = engine.NewBag(g.rng.Int63(), engine.BagOptions{
		Extended: g.cfg.Pieces.Extended,
		Glass:    g.cfg.Pieces.Glass,
	})
	g.lock = engine.NewLockTimer(g.clock, g.cfg.LockDelay(), g.cfg.Timing.MaxLockResets)
	g.sinks = engine.Fanout{engine.SinkFunc(g.notify), g.observe}
	g.rotator = engine.NewRotator(opts, g.grid, g.clock, g.lock, g.sinks)
	g.mover = engine.NewMover(opts, g.grid, g.lock, g.sinks)

	g.score = 0
	g.lines = 0
	g.combo = 0
	g.pieces = 0
	g.lastClear = 0
	g.spins = make(map[engine.SpinKind]int)
	g.startLevel = 1
	if selectedStartLevel > 0 {
		g.startLevel = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	g.level = g.startLevel
	g.fallAccum = 0
	g.banner = ""
	g.bannerTicks = 0
	g.trails = nil
	g.dropPivots = nil

	g.gameOver = false
	g.paused = false
	g.tooSmall = g.screenW < g.requiredWidth() || g.screenH < g.requiredHeight()

	g.spawn()
}

// loadConfig resolves configuration the same way the other CLI flags do.
func (g *Game) loadConfig() config.BlocksConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyBlocksPreset(&cfg, preset)
	}
	return cfg
}

// SetPreset selects a difficulty preset for this instance, taking precedence
// over SetDifficultyPreset. Applies from the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

func scoreTable(s config.ScoringConfig) engine.ScoreTable {
	t := engine.ScoreTable{
		Combo:    s.Combo,
		SoftDrop: s.SoftDrop,
		HardDrop: s.HardDrop,
	}
	for i, v := range s.Lines {
		if i+1 < len(t.Lines) {
			t.Lines[i+1] = v
		}
	}
	return t
}

// spawn deals the next piece. A spawn that does not fit ends the game.
func (g *Game) spawn() {
	p := g.bag.Next()
	x := g.grid.Width()/2 - 1
	g.lock.Clear()
	g.mover.Reset()
	g.rotator.ClearLastSpin()
	g.fallAccum = 0

	for _, y := range []int{1, 0} {
		if g.checker.CanSpawn(p, g.grid, x, y) {
			p.SetPosition(x, y)
			g.piece = p
			return
		}
	}
	p.SetPosition(x, 0)
	g.piece = p
	g.gameOver = true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1000/g.tickMs + 0.5),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance(time.Duration(g.tickMs * float64(time.Millisecond)))
	g.updateEffects()

	if g.processInput(input) {
		return core.StepResult{State: g.State()}
	}
	g.applyGravity()

	if g.checker.AtRest(g.piece, g.grid) {
		g.lock.Start(g.piece)
		if g.lock.Expired() {
			landing := engine.LandingNormal
			if g.mover.SoftDropping() {
				landing = engine.LandingSoft
			}
			g.lockPiece(landing)
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput applies one frame of actions. It returns true when the
// frame locked the piece.
func (g *Game) processInput(input core.InputFrame) bool {
	p := g.piece

	switch {
	case input.Has(core.ActionRotateCW):
		g.rotator.RotateCW(p)
	case input.Has(core.ActionRotateCCW):
		g.rotator.RotateCCW(p)
	case input.Has(core.ActionRotate180):
		g.rotator.Rotate180(p)
	default:
		g.rotator.ReleaseKey()
	}

	moved := false
	if input.Has(core.ActionLeft) {
		moved = g.mover.MoveLeft(p) || moved
	}
	if input.Has(core.ActionRight) {
		moved = g.mover.MoveRight(p) || moved
	}

	if input.Has(core.ActionHardDrop) {
		g.dropLayout = p.Layout()
		g.dropColor = p.Kind().Color()
		g.dropPivots = g.dropPivots[:0]
		distance := g.mover.HardDrop(p)
		g.score += g.scores.Drop(distance, true)
		if distance > 0 {
			g.rotator.ClearLastSpin()
		}
		g.addTrail()
		g.lockPiece(engine.LandingHard)
		return true
	}

	if input.Has(core.ActionSoftDrop) {
		if g.mover.MoveDown(p) {
			g.score += g.scores.Drop(1, false)
			g.fallAccum = 0
			moved = true
		}
	} else {
		g.mover.EndSoftDrop()
	}

	if moved {
		g.rotator.ClearLastSpin()
	}
	return false
}

// applyGravity drops the piece one row per elapsed fall interval.
func (g *Game) applyGravity() {
	g.fallAccum += g.tickMs
	interval := float64(g.FallInterval())
	for g.fallAccum >= interval {
		g.fallAccum -= interval
		if !g.mover.Fall(g.piece) {
			g.fallAccum = 0
			return
		}
		g.rotator.ClearLastSpin()
	}
}

// FallInterval returns the current gravity interval in milliseconds.
func (g *Game) FallInterval() int {
	return g.difficulty.FallInterval(g.cfg.Timing.GravityMs, g.cfg.Timing.MinGravityMs, g.progress())
}

func (g *Game) progress() config.Progress {
	return config.Progress{Lines: g.lines, Score: g.score, Ticks: int(g.tick)}
}

// lockPiece writes the active piece into the grid, clears rows, scores the
// lock and spawns the next piece.
func (g *Game) lockPiece(landing engine.Landing) {
	p := g.piece
	g.sinks.Notify(engine.Event{Type: engine.EventLanding, Landing: landing})

	spin := g.rotator.LastSpin()
	chain := g.rotator.LastChain()
	kind := spin
	if chain != engine.SpinNone {
		kind = chain
	}

	if !g.grid.Lock(p) {
		// Lock-out: at least one cell stayed in the hidden buffer
		g.gameOver = true
		return
	}
	g.pieces++

	glass := false
	for _, y := range g.grid.FullRows() {
		if g.grid.RowHas(y, engine.GlassCode) {
			glass = true
			break
		}
	}
	cleared := g.grid.ClearFullRows()
	g.lastClear = cleared

	points := g.scores.LineClear(cleared, g.level, g.combo)
	if glass && g.cfg.Scoring.GlassMultiplier > 1 {
		points *= g.cfg.Scoring.GlassMultiplier
	}
	points += engine.SpinScore(kind, cleared, g.level)
	g.score += points

	if cleared > 0 {
		g.combo++
	} else {
		g.combo = 0
	}
	g.lines += cleared
	g.level = g.startLevel + g.lines/g.cfg.Scoring.LinesPerLevel

	switch {
	case kind != engine.SpinNone:
		g.spins[kind]++
		g.showBanner(bannerText(kind, cleared))
	case cleared >= 4:
		g.showBanner("QUAD")
	}

	g.sinks.Notify(engine.Event{
		Type:   engine.EventScore,
		Spin:   engine.SpinResult{Kind: kind, LinesCleared: cleared},
		Chain:  chain,
		Points: points,
	})

	// Every piece starts with an empty chain
	g.rotator.Reset()

	g.spawn()
}

// notify is the game's own engine sink.
func (g *Game) notify(e engine.Event) {
	if e.Type == engine.EventTrail {
		g.dropPivots = append(g.dropPivots, core.Point{X: e.Trail.X, Y: e.Trail.Y})
	}
}

func (g *Game) addTrail() {
	if len(g.dropPivots) == 0 {
		return
	}
	g.trails = append(g.trails, trail{
		layout: g.dropLayout,
		pivots: append([]core.Point(nil), g.dropPivots...),
		color:  g.dropColor,
		ttl:    trailTicks,
	})
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = bannerTicks
}

func (g *Game) updateEffects() {
	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}
	live := g.trails[:0]
	for _, t := range g.trails {
		t.ttl--
		if t.ttl > 0 {
			live = append(live, t)
		}
	}
	g.trails = live
}

// bannerText names a spin for the HUD.
func bannerText(kind engine.SpinKind, lines int) string {
	var name string
	switch kind {
	case engine.SpinFull:
		name = "T-SPIN"
	case engine.SpinMini:
		name = "T-SPIN MINI"
	case engine.SpinTriple:
		name = "TRIPLE SPIN"
	case engine.SpinTripleMini:
		name = "TRIPLE SPIN MINI"
	default:
		return ""
	}
	switch lines {
	case 0:
		return name
	case 1:
		return name + " SINGLE"
	case 2:
		return name + " DOUBLE"
	default:
		return name + " TRIPLE"
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// SpinCounts returns how many locks scored each spin kind.
func (g *Game) SpinCounts() map[engine.SpinKind]int {
	out := make(map[engine.SpinKind]int, len(g.spins))
	for k, v := range g.spins {
		out[k] = v
	}
	return out
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Lines: %d, Level: %d\n", g.tick, g.score, g.lines, g.level))
	if g.piece != nil {
		b.WriteString(fmt.Sprintf("Piece: %s at (%d, %d), glass: %v\n", g.piece.Kind(), g.piece.X(), g.piece.Y(), g.piece.Glass()))
	}
	b.WriteString(fmt.Sprintf("Lock pending: %v, Chain: %d, Cooldown: %s\n",
		g.lock.Pending(), g.rotator.ChainCount(), g.rotator.CooldownState()))
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.gameOver, g.paused))
	return b.String()
}
