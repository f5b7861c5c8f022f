package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
)

func newState(t *testing.T, seed int64) *engine.State {
	t.Helper()
	s, err := engine.NewState(engine.DefaultParams(), seeded(seed))
	require.NoError(t, err)
	return s
}

func TestNewStateDefaults(t *testing.T) {
	s := newState(t, 1)

	assert.Equal(t, engine.StatusRunning, s.Status)
	assert.Len(t, s.Targets, 2)
	assert.Len(t, s.Connections, 2)
	assert.Equal(t, 5, s.Piece.X)
	assert.Equal(t, 0, s.Piece.Y)
	assert.Equal(t, 0, s.Piece.Rotation)
	assert.Equal(t, engine.DefaultFallSpeed, s.Piece.FallSpeed)
	assert.Equal(t, 0, s.Field.FilledCount())
}

func TestNewStateInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"empty", 0, 10},
		{"narrower than an I piece", engine.MinWidth - 1, 15},
		{"single row", 10, engine.MinHeight - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.DefaultParams()
			p.Width, p.Height = tt.width, tt.height

			_, err := engine.NewState(p, seeded(1))
			assert.Error(t, err)
		})
	}
}

func TestNewStateMinimumBoard(t *testing.T) {
	p := engine.DefaultParams()
	p.Width, p.Height = engine.MinWidth, engine.MinHeight
	p.TargetCount = 1
	// The I piece is the widest spawn, reaching column nx/2-2.
	s, err := engine.NewState(p, &scriptedRand{values: []int{0, 0, 1, 0, 0, int(engine.KindI), 0}})
	require.NoError(t, err)

	assert.Equal(t, engine.KindI, s.Piece.Kind)
	assert.Equal(t, engine.StatusRunning, s.Status)
	assert.True(t, engine.CanPlace(s.Piece, s.Field))
}

func TestNewStateTooManyTargets(t *testing.T) {
	p := engine.DefaultParams()
	p.TargetCount = engine.PaletteSize + 1

	_, err := engine.NewState(p, seeded(1))
	assert.ErrorIs(t, err, engine.ErrTooManyTargets)
}

func TestTickFalls(t *testing.T) {
	s := newState(t, 2)
	s.Piece = engine.Piece{Kind: engine.KindO, X: 4, Color: engine.ColorBlue, FallSpeed: 2}

	res := s.Tick(750 * time.Millisecond)

	assert.False(t, res.Landed())
	assert.InDelta(t, 1.5, s.Piece.YF, 1e-9)
	assert.Equal(t, 1, s.Piece.Y)
	assert.Equal(t, int(math.Floor(s.Piece.YF)), s.Piece.Y)
	assert.Equal(t, uint64(1), s.Ticks)
}

func TestTickNegativeDtIgnored(t *testing.T) {
	s := newState(t, 2)
	s.Piece = engine.Piece{Kind: engine.KindO, X: 4, Color: engine.ColorBlue, FallSpeed: 2}

	res := s.Tick(-2 * time.Second)

	assert.False(t, res.Landed())
	assert.Equal(t, 0, s.Piece.Y)
	assert.Zero(t, s.Piece.YF)
	assert.True(t, engine.CanPlace(s.Piece, s.Field))

	s.Tick(750 * time.Millisecond)
	assert.Equal(t, 1, s.Piece.Y)
}

func TestTickDoesNotTunnel(t *testing.T) {
	s := newState(t, 3)
	s.Field.Set(engine.C(4, 6), engine.ColorGreen)
	s.Piece = engine.Piece{Kind: engine.KindO, X: 4, Color: engine.ColorBlue, FallSpeed: 2.4}

	// One tick covers the whole board.
	res := s.Tick(time.Minute)

	require.True(t, res.Landed())
	assert.ElementsMatch(t,
		[]engine.Coord{engine.C(4, 4), engine.C(5, 4), engine.C(4, 5), engine.C(5, 5)},
		res.Locked)
}

func TestLockSequenceWins(t *testing.T) {
	s := newState(t, 4)
	s.Targets = []engine.Target{{Color: engine.ColorBlue, A: engine.C(0, 14), B: engine.C(1, 13)}}
	s.Piece = engine.Piece{Kind: engine.KindO, X: 0, Color: engine.ColorBlue, FallSpeed: 2.4}

	var res engine.TickResult
	for i := 0; i < 1000 && !res.Landed(); i++ {
		res = s.Tick(time.Second / 60)
	}

	require.True(t, res.Landed())
	assert.Empty(t, s.Targets)
	assert.Len(t, res.Solved, 1)
	assert.Equal(t, engine.StatusWon, s.Status)
	assert.Equal(t, engine.StatusWon, res.Status)
	assert.Equal(t, 0, s.Field.FilledCount(), "solved region is cleared")
}

func TestLockSequenceLosesOnce(t *testing.T) {
	s := newState(t, 5)
	// Rows 0-1 filled except columns 0, 1 and 9: no row is complete, and every
	// spawn at column 5 overlaps.
	for y := 0; y < 2; y++ {
		fillRow(s.Field, y, engine.ColorGreen, 0, 1, 9)
	}
	s.Field.Set(engine.C(0, 2), engine.ColorGreen)
	s.Piece = engine.Piece{Kind: engine.KindO, X: 0, Color: engine.ColorBlue, FallSpeed: 2.4}

	res := s.Tick(time.Second)

	require.True(t, res.Landed())
	assert.Empty(t, res.ClearedRows)
	assert.Equal(t, engine.StatusLost, res.Status)
	assert.Equal(t, engine.StatusLost, s.Status)

	frozen := s.Field.Clone()
	piece := s.Piece
	ticks := s.Ticks
	for i := 0; i < 100; i++ {
		res = s.Tick(time.Second)
		assert.False(t, res.Landed())
		assert.Equal(t, engine.StatusLost, res.Status)
	}
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.Rotate())
	assert.False(t, s.SoftDrop())

	assert.True(t, s.Field.Equal(frozen))
	assert.Equal(t, piece, s.Piece)
	assert.Equal(t, ticks, s.Ticks)
}

func TestMovesValidated(t *testing.T) {
	s := newState(t, 6)
	s.Piece = engine.Piece{Kind: engine.KindI, X: 2, Y: 3, YF: 3.25, Color: engine.ColorRed, FallSpeed: 2.4}

	assert.False(t, s.MoveLeft(), "I at column 0 cannot move left")
	assert.Equal(t, 2, s.Piece.X)

	assert.True(t, s.MoveRight())
	assert.Equal(t, 3, s.Piece.X)

	s.Field.Set(engine.C(5, 3), engine.ColorGreen)
	assert.False(t, s.MoveRight(), "blocked by a placed cell")
	assert.Equal(t, 3, s.Piece.X)

	assert.True(t, s.SoftDrop())
	assert.Equal(t, 4, s.Piece.Y)
	assert.InDelta(t, 4.25, s.Piece.YF, 1e-9)
}

func TestRotateValidated(t *testing.T) {
	s := newState(t, 7)
	s.Piece = engine.Piece{Kind: engine.KindI, X: 5, Y: 0, Color: engine.ColorRed, FallSpeed: 2.4}

	assert.False(t, s.Rotate(), "rotation would poke above row 0")
	assert.Equal(t, 0, s.Piece.Rotation)

	s.Piece = s.Piece.Moved(0, 3)
	assert.True(t, s.Rotate())
	assert.Equal(t, 1, s.Piece.Rotation)

	for i := 0; i < 3; i++ {
		require.True(t, s.Rotate())
	}
	assert.Equal(t, 0, s.Piece.Rotation)
}

func TestSoftDropStopsAboveFloor(t *testing.T) {
	s := newState(t, 8)
	s.Piece = engine.Piece{Kind: engine.KindI, X: 5, Y: 14, YF: 14, Color: engine.ColorRed, FallSpeed: 2.4}

	assert.False(t, s.SoftDrop())
	assert.Equal(t, 14, s.Piece.Y)
}

func TestResetAfterLoss(t *testing.T) {
	s := newState(t, 9)
	s.Status = engine.StatusLost
	fillRow(s.Field, 3, engine.ColorRed, 0)

	require.NoError(t, s.Reset())

	assert.Equal(t, engine.StatusRunning, s.Status)
	assert.Len(t, s.Targets, 2)
	assert.Equal(t, 0, s.Field.FilledCount())
	assert.Equal(t, uint64(0), s.Ticks)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newState(t, 10)
	snap := s.Snapshot()

	s.Field.Set(engine.C(0, 0), engine.ColorRed)
	s.Targets[0].Color = engine.ColorNone

	assert.Equal(t, engine.ColorNone, snap.Field.Get(engine.C(0, 0)))
	assert.NotEqual(t, engine.ColorNone, snap.Targets[0].Color)
}

func TestDeterminism(t *testing.T) {
	run := func() engine.Snapshot {
		s := newState(t, 42)
		for i := 0; i < 2000; i++ {
			switch i % 7 {
			case 1:
				s.MoveLeft()
			case 3:
				s.Rotate()
			case 5:
				s.MoveRight()
			}
			s.Tick(time.Second / 60)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, a.Piece, b.Piece)
	assert.True(t, a.Field.Equal(b.Field))
	assert.Equal(t, a.Targets, b.Targets)
}

func TestRenderASCII(t *testing.T) {
	s := newState(t, 11)
	out := engine.RenderASCII(s)

	assert.Contains(t, out, "Status: running")
	assert.Contains(t, out, "Targets: 2")
	assert.Contains(t, out, "##")
	assert.Contains(t, out, "==========")
}
