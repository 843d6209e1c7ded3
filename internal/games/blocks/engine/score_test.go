package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinScore(t *testing.T) {
	tests := []struct {
		kind         SpinKind
		lines, level int
		expected     int
	}{
		{SpinFull, 1, 3, 3600},
		{SpinFull, 2, 1, 2400},
		{SpinMini, 1, 2, 200},
		{SpinTriple, 1, 1, 1600},
		{SpinTripleMini, 2, 5, 0},
		{SpinNone, 4, 9, 0},
		{SpinFull, 0, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, SpinScore(tc.kind, tc.lines, tc.level))
		})
	}
}

func TestScoreTable(t *testing.T) {
	st := DefaultScoreTable()

	assert.Equal(t, 0, st.LineClear(0, 5, 3))
	assert.Equal(t, 100, st.LineClear(1, 1, 0))
	assert.Equal(t, 1650, st.LineClear(4, 2, 1))
	assert.Equal(t, 800*2, st.LineClear(5, 2, 0), "more than four rows uses the top entry")

	assert.Equal(t, 6, st.Drop(6, false))
	assert.Equal(t, 12, st.Drop(6, true))
	assert.Equal(t, 0, st.Drop(0, true))
}

func TestSpinKindString(t *testing.T) {
	assert.Equal(t, "spin", SpinFull.String())
	assert.Equal(t, "triple_spin_mini", SpinTripleMini.String())
	assert.Equal(t, "none", SpinKind(99).String())
}
