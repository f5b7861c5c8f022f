package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
)

func TestIsRowCompleted(t *testing.T) {
	f := engine.NewField(5, 6)
	fillRow(f, 3, engine.ColorRed)
	fillRow(f, 4, engine.ColorRed, 2)

	assert.True(t, engine.IsRowCompleted(f, 3))
	assert.False(t, engine.IsRowCompleted(f, 4))
	assert.False(t, engine.IsRowCompleted(f, 0))
	assert.True(t, engine.IsRowCompleted(f, 6), "floor row is always complete")
	assert.Equal(t, []int{3}, engine.CompletedRows(f), "floor row is never reported")
}

func TestClearCompletedRowsNoop(t *testing.T) {
	f := engine.NewField(5, 6)
	f.Set(engine.C(1, 5), engine.ColorBlue)
	before := f.Clone()

	assert.Nil(t, engine.ClearCompletedRows(f))
	assert.True(t, f.Equal(before))
}

func TestClearCompletedRowsCompacts(t *testing.T) {
	f := engine.NewField(5, 6)
	f.Set(engine.C(0, 1), engine.ColorRed)
	fillRow(f, 2, engine.ColorYellow)
	f.Set(engine.C(1, 3), engine.ColorGreen)
	fillRow(f, 4, engine.ColorYellow)
	f.Set(engine.C(2, 5), engine.ColorBlue)

	cleared := engine.ClearCompletedRows(f)
	require.Equal(t, []int{2, 4}, cleared)

	expected := engine.NewField(5, 6)
	expected.Set(engine.C(0, 3), engine.ColorRed)   // two cleared rows below
	expected.Set(engine.C(1, 4), engine.ColorGreen) // one cleared row below
	expected.Set(engine.C(2, 5), engine.ColorBlue)  // below every cleared row

	assert.True(t, f.Equal(expected), "got\n%v", f.Cells)
}

func TestClearAdjacentCompletedRows(t *testing.T) {
	f := engine.NewField(3, 5)
	f.Set(engine.C(2, 0), engine.ColorPurple)
	f.Set(engine.C(0, 1), engine.ColorRed)
	fillRow(f, 2, engine.ColorGreen)
	fillRow(f, 3, engine.ColorGreen)
	f.Set(engine.C(1, 4), engine.ColorBlue)

	engine.ClearCompletedRows(f)

	expected := engine.NewField(3, 5)
	expected.Set(engine.C(2, 2), engine.ColorPurple)
	expected.Set(engine.C(0, 3), engine.ColorRed)
	expected.Set(engine.C(1, 4), engine.ColorBlue)
	assert.True(t, f.Equal(expected))
}

func TestFourIPiecesClearRow(t *testing.T) {
	params := engine.DefaultParams()
	params.Width = 16
	params.TargetCount = 1

	// Target: red, (0,8)-(1,8). First spawn: I, blue.
	rng := &scriptedRand{values: []int{0, 0, 1, 0, 4, 6, 0}}
	s, err := engine.NewState(params, rng)
	require.NoError(t, err)
	require.Len(t, s.Targets, 1)
	require.Equal(t, engine.ColorRed, s.Targets[0].Color)

	marker := engine.C(5, 13)
	for i, x := range []int{2, 6, 10, 14} {
		if i == 3 {
			// Rests on the second piece; the last piece falls clear of it.
			s.Field.Set(marker, engine.ColorGreen)
		}
		s.Piece = engine.Piece{Kind: engine.KindI, X: x, Color: engine.ColorBlue, FallSpeed: params.FallSpeed}
		res := s.Tick(10 * time.Second)

		require.True(t, res.Landed(), "piece %d should land", i)
		if i < 3 {
			assert.Empty(t, res.ClearedRows)
		} else {
			assert.Equal(t, []int{14}, res.ClearedRows)
		}
	}

	assert.Equal(t, engine.StatusRunning, s.Status)
	for x := 0; x < params.Width; x++ {
		if x == marker.X {
			assert.Equal(t, engine.ColorGreen, s.Field.Get(engine.C(x, 14)))
			continue
		}
		assert.Equal(t, engine.ColorNone, s.Field.Get(engine.C(x, 14)), "column %d", x)
	}
	assert.Equal(t, engine.ColorNone, s.Field.Get(marker))
	assert.Equal(t, 1, s.Field.FilledCount())
}
