package replay

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/games/blocks/engine"
	"github.com/vovakirdan/fluxblocks/internal/registry"
	"github.com/vovakirdan/fluxblocks/internal/storage"

	_ "github.com/vovakirdan/fluxblocks/internal/games/blocks" // Register games
)

// observer is implemented by games that publish engine events.
type observer interface {
	Observe(s engine.Sink)
}

// SpinEvent is one spin that scored during a run.
type SpinEvent struct {
	Tick   int    `json:"tick"`
	Kind   string `json:"kind"`
	Lines  int    `json:"lines"`
	Level  int    `json:"level"`
	Points int    `json:"points"`
}

// Summary is the outcome of a run.
type Summary struct {
	Game     string         `json:"game"`
	Seed     int64          `json:"seed"`
	Ticks    int            `json:"ticks"`
	Score    int            `json:"score"`
	Lines    int            `json:"lines"`
	Level    int            `json:"level"`
	GameOver bool           `json:"game_over"`
	Spins    []SpinEvent    `json:"spins,omitempty"`
	Counts   map[string]int `json:"spin_counts,omitempty"`
	Screen   string         `json:"screen,omitempty"`
}

// Options tune a run.
type Options struct {
	Logger  *log.Logger // Engine events are logged when set
	ScreenW int
	ScreenH int
	Render  bool // Capture the final frame in Summary.Screen
}

// Run plays the script to completion, stopping early at game over.
func Run(ctx context.Context, s *Script, opts Options) (Summary, error) {
	g, err := registry.Create(s.Game)
	if err != nil {
		return Summary{}, fmt.Errorf("replay: %w", err)
	}

	sum := Summary{Game: s.Game, Seed: s.Seed, Counts: make(map[string]int)}
	tick := 0
	if o, ok := g.(observer); ok {
		sinks := engine.Fanout{engine.SinkFunc(func(e engine.Event) {
			if e.Type != engine.EventScore || e.Spin.Kind == engine.SpinNone {
				return
			}
			sum.Spins = append(sum.Spins, SpinEvent{
				Tick:   tick,
				Kind:   e.Spin.Kind.String(),
				Lines:  e.Spin.LinesCleared,
				Level:  g.State().Level,
				Points: e.Points,
			})
			sum.Counts[e.Spin.Kind.String()]++
		})}
		if opts.Logger != nil {
			sinks = append(sinks, engine.LogSink{Logger: opts.Logger})
		}
		o.Observe(sinks)
	}

	rc := core.RuntimeConfig{
		ScreenW:  opts.ScreenW,
		ScreenH:  opts.ScreenH,
		TickRate: s.TickRate,
		Seed:     s.Seed,
	}.WithDefaults()
	g.Reset(rc)

	for _, frame := range s.Frames() {
		if tick%256 == 0 {
			if err := ctx.Err(); err != nil {
				return sum, fmt.Errorf("replay: interrupted at tick %d: %w", tick, err)
			}
		}
		g.Step(frame)
		tick++
		if g.State().GameOver {
			break
		}
	}

	st := g.State()
	sum.Ticks = tick
	sum.Score = st.Score
	sum.Lines = st.Lines
	sum.Level = st.Level
	sum.GameOver = st.GameOver

	if opts.Render {
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		g.Render(screen)
		sum.Screen = screen.String()
	}
	if opts.Logger != nil {
		opts.Logger.Info("replay finished", "game", sum.Game, "ticks", sum.Ticks, "score", sum.Score, "lines", sum.Lines)
	}
	return sum, nil
}

// Save stores the summary's score and spins.
func Save(store *storage.Store, sum Summary) error {
	if _, err := store.SaveScore(storage.ScoreEntry{
		GameID: sum.Game,
		Score:  sum.Score,
		Lines:  sum.Lines,
		Level:  sum.Level,
		Seed:   sum.Seed,
	}); err != nil {
		return err
	}
	records := make([]storage.SpinRecord, 0, len(sum.Spins))
	for _, sp := range sum.Spins {
		records = append(records, storage.SpinRecord{
			GameID: sum.Game,
			Kind:   sp.Kind,
			Lines:  sp.Lines,
			Level:  sp.Level,
			Points: sp.Points,
		})
	}
	return store.SaveSpins(records)
}
