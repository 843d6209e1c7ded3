package engine

// SpinBase returns the per-line, per-level base score of a spin kind.
// Triple mini spins have no observed base value and score 0.
func SpinBase(kind SpinKind) int {
	switch kind {
	case SpinFull:
		return 1200
	case SpinMini:
		return 100
	case SpinTriple:
		return 1600
	default:
		return 0
	}
}

// SpinScore is base(kind) * lines * level.
func SpinScore(kind SpinKind, lines, level int) int {
	return SpinBase(kind) * lines * level
}

// ScoreTable holds the line-clear and drop scoring constants.
type ScoreTable struct {
	Lines    [5]int // indexed by rows cleared, 0..4
	Combo    int    // bonus per consecutive clearing lock
	SoftDrop int    // per row
	HardDrop int    // per row
}

// DefaultScoreTable returns the standard values.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Lines:    [5]int{0, 100, 300, 500, 800},
		Combo:    50,
		SoftDrop: 1,
		HardDrop: 2,
	}
}

// LineClear scores a lock that removed lines rows at level with the given
// combo count (0 for the first clear of a run).
func (t ScoreTable) LineClear(lines, level, combo int) int {
	if lines <= 0 {
		return 0
	}
	base := t.Lines[len(t.Lines)-1]
	if lines < len(t.Lines) {
		base = t.Lines[lines]
	}
	return base*level + combo*t.Combo
}

// Drop scores a soft or hard drop over distance rows.
func (t ScoreTable) Drop(distance int, hard bool) int {
	if distance <= 0 {
		return 0
	}
	if hard {
		return distance * t.HardDrop
	}
	return distance * t.SoftDrop
}
