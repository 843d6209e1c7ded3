package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/fluxblocks/internal/core"
)

var allKinds = []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ, KindX}

func TestNewPiece(t *testing.T) {
	for _, k := range allKinds {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k, false)
			require.NotNil(t, p)
			assert.Equal(t, k, p.Kind())
			assert.Equal(t, 0, p.X())
			assert.Equal(t, 0, p.Y())
			if k == KindX {
				assert.Len(t, p.Cells(), 5)
				assert.True(t, p.Glass(), "X pieces always use the glass table")
			} else {
				assert.Len(t, p.Cells(), 4)
				assert.False(t, p.Glass())
			}
		})
	}

	assert.Nil(t, NewPiece(KindNone, false))
	assert.Nil(t, NewPiece(Kind(42), false))
}

func TestPieceFourRotationsRestoreLayout(t *testing.T) {
	for _, k := range allKinds {
		t.Run(k.String(), func(t *testing.T) {
			p := pieceAt(k, 4, 6)
			before := p.Layout()
			for range 4 {
				p.Rotate()
			}
			assert.Equal(t, before, p.Layout())
			assert.Equal(t, core.Point{X: 4, Y: 6}, p.Pivot())
		})
	}
}

func TestPieceRotateTransform(t *testing.T) {
	p := NewPiece(KindT, false)
	p.Rotate()
	assert.Equal(t, []core.Point{{X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}, p.Layout())

	o := NewPiece(KindO, false)
	before := o.Layout()
	o.Rotate()
	assert.Equal(t, before, o.Layout())
}

func TestPieceMoveUpdatesCells(t *testing.T) {
	p := pieceAt(KindI, 3, 2)
	p.Move(1, 1)

	xs := []int{}
	for _, c := range p.Cells() {
		assert.Equal(t, 3, c.Y)
		xs = append(xs, c.X)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, xs)
}

func TestPieceCloneIsIndependent(t *testing.T) {
	p := pieceAt(KindL, 5, 5)
	c := p.Clone()
	c.Move(2, 0)
	c.Rotate()

	assert.Equal(t, 5, p.X())
	assert.NotEqual(t, p.Layout(), c.Layout())

	var nilPiece *Piece
	assert.Nil(t, nilPiece.Clone())
}

func TestPieceResetRotation(t *testing.T) {
	p := pieceAt(KindJ, 2, 3)
	spawn := p.Layout()
	p.Rotate()
	p.Rotate()
	p.ResetRotation()
	assert.Equal(t, spawn, p.Layout())
	assert.Equal(t, core.Point{X: 2, Y: 3}, p.Pivot())
}

func TestPieceBoundsAndCode(t *testing.T) {
	tests := []struct {
		kind  Kind
		glass bool
		w, h  int
		code  int
	}{
		{KindI, false, 4, 1, int(KindI)},
		{KindT, false, 3, 2, int(KindT)},
		{KindO, false, 2, 2, int(KindO)},
		{KindX, false, 3, 3, int(KindX)},
		{KindS, true, 3, 2, GlassCode},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := NewPiece(tc.kind, tc.glass)
			b := p.Bounds()
			assert.Equal(t, tc.w, b.W)
			assert.Equal(t, tc.h, b.H)
			assert.Equal(t, tc.code, p.Code())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("T")
	assert.True(t, ok)
	assert.Equal(t, KindT, k)

	_, ok = ParseKind("none")
	assert.False(t, ok)
}
