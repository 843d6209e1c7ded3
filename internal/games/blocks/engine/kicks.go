package engine

// Offset is a wall-kick translation applied relative to the pre-rotation pivot.
type Offset struct {
	DX, DY int
}

// KickFamily selects the wall-kick table for a piece.
type KickFamily int

const (
	FamilyNone KickFamily = iota // O: no kicks
	FamilyI
	FamilyShared // J, L, S, T, Z
	FamilyGlass
)

func (f KickFamily) String() string {
	switch f {
	case FamilyI:
		return "i"
	case FamilyShared:
		return "shared"
	case FamilyGlass:
		return "glass"
	default:
		return "none"
	}
}

// Each table holds four orientation transitions (0>1, 1>2, 2>3, 3>0) of five
// offsets. Orientation is not tracked, so the whole table is walked in order.
var kickTables = map[KickFamily][]Offset{
	FamilyI: {
		{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2},
		{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1},
		{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2},
		{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1},
	},
	FamilyShared: {
		{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2},
		{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2},
		{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2},
		{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2},
	},
	FamilyGlass: {
		{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, 0},
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{0, 0}, {0, 1}, {0, -1}, {1, 0}, {-1, 0},
	},
}

// FamilyOf returns the kick family for p.
func FamilyOf(p *Piece) KickFamily {
	if p == nil {
		return FamilyNone
	}
	switch {
	case p.kind == KindO:
		return FamilyNone
	case p.kind == KindI:
		return FamilyI
	case p.glass:
		return FamilyGlass
	default:
		return FamilyShared
	}
}

// Kicks returns the ordered candidate offsets for a family. The result must
// not be modified.
func Kicks(f KickFamily) []Offset {
	return kickTables[f]
}
