package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Lines     int
	Level     int
	Combo     int
	Pieces    int
	Piece     string // Active piece kind
	PieceX    int
	PieceY    int
	Glass     bool
	Next      []string
	Filled    int // Occupied grid cells
	LastClear int
	Chain     int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		Lines:     g.lines,
		Level:     g.level,
		Combo:     g.combo,
		Pieces:    g.pieces,
		LastClear: g.lastClear,
		Chain:     g.rotator.ChainCount(),
		State:     state,
	}
	if g.piece != nil {
		s.Piece = g.piece.Kind().String()
		s.PieceX = g.piece.X()
		s.PieceY = g.piece.Y()
		s.Glass = g.piece.Glass()
	}
	for _, k := range g.bag.Peek(g.cfg.Pieces.Preview) {
		s.Next = append(s.Next, k.String())
	}
	for y := range g.grid.Height() {
		s.Filled += g.grid.RowFill(y)
	}
	return s
}
