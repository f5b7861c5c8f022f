package engine

import (
	"fmt"
	"time"
)

// Status is the state machine position of a game.
type Status uint8

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Smallest board a game accepts. Every piece spawned at column nx/2 must fit,
// the I piece spanning nx/2-2..nx/2+1, and every piece is two rows tall.
const (
	MinWidth  = 4
	MinHeight = 2
)

// Params configures a game.
type Params struct {
	Width       int     // Columns
	Height      int     // Playable rows, floor excluded
	FallSpeed   float64 // Rows per second
	TargetCount int     // Targets placed on reset
	MaxAttempts int     // Sampling budget per target
}

// DefaultParams returns the classic 10x15 board with two targets.
func DefaultParams() Params {
	return Params{
		Width:       10,
		Height:      15,
		FallSpeed:   DefaultFallSpeed,
		TargetCount: DefaultTargetCount,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// TickResult describes what happened during one Tick.
type TickResult struct {
	Locked      []Coord  // Cells written by the lock, nil if the piece is still falling
	ClearedRows []int    // Rows removed after the lock
	Solved      []Target // Targets satisfied and removed after the lock
	Status      Status   // Status after the tick
}

// Landed reports whether the piece locked during the tick.
func (r TickResult) Landed() bool {
	return r.Locked != nil
}

// State is the complete simulation: field, active piece, live targets and the
// connectivity derived from them. It is not safe for concurrent use; the host
// serializes Tick and input calls.
type State struct {
	Params      Params
	Field       *Field
	Piece       Piece
	Targets     []Target
	Connections []Connection
	Status      Status
	Ticks       uint64

	rng Rand
}

// NewState creates a game and resets it.
func NewState(p Params, rng Rand) (*State, error) {
	if p.Width < MinWidth || p.Height < MinHeight {
		return nil, fmt.Errorf("engine: invalid board size %dx%d, minimum is %dx%d",
			p.Width, p.Height, MinWidth, MinHeight)
	}
	s := &State{
		Params: p,
		Field:  NewField(p.Width, p.Height),
		rng:    rng,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset empties the field, places TargetCount new targets, spawns a piece and
// returns to StatusRunning. If targets cannot be placed the game is left in
// StatusLost and the error is returned. A spawn that already collides ends
// the game as StatusLost, the same as after a lock.
func (s *State) Reset() error {
	s.Field.Initialize()
	s.Ticks = 0

	targets, err := RegenerateTargets(s.rng, s.Params.Width, s.Params.Height, s.Params.TargetCount, s.Params.MaxAttempts)
	if err != nil {
		s.Targets = nil
		s.Connections = nil
		s.Status = StatusLost
		return fmt.Errorf("engine: reset: %w", err)
	}
	s.Targets = targets
	s.Connections = Evaluate(s.Field, s.Targets)
	s.Piece = Spawn(s.rng, s.Params.Width, s.Params.FallSpeed)
	s.Status = StatusRunning
	if Collides(s.Piece, s.Field) {
		s.Status = StatusLost
	}
	return nil
}

// Tick advances the falling piece by dt. When the piece runs into something it
// is locked, full rows are cleared, solved targets are removed and a new piece
// is spawned. Terminal games are left untouched. A negative dt counts as zero;
// pieces never move up.
func (s *State) Tick(dt time.Duration) TickResult {
	if s.Status.Terminal() {
		return TickResult{Status: s.Status}
	}
	s.Ticks++
	dt = max(dt, 0)

	s.Piece.YF += s.Piece.FallSpeed * dt.Seconds()
	target := s.Piece.row()

	// Descend one row at a time so a large dt cannot tunnel through blocks.
	for y := s.Piece.Y + 1; y <= target; y++ {
		next := s.Piece.AtRow(y)
		if Collides(next, s.Field) {
			s.Piece = next
			return s.land()
		}
	}
	if target > s.Piece.Y {
		s.Piece.Y = target
	}
	return TickResult{Status: s.Status}
}

// land runs the lock sequence for a piece that collides on its current row.
func (s *State) land() TickResult {
	var res TickResult
	res.Locked = Lock(s.Piece, s.Field)
	res.ClearedRows = ClearCompletedRows(s.Field)

	conns := Evaluate(s.Field, s.Targets)
	s.Targets, s.Connections, res.Solved = RemoveCompleted(s.Field, s.Targets, conns)

	s.Piece = Spawn(s.rng, s.Params.Width, s.Params.FallSpeed)
	switch {
	case Collides(s.Piece, s.Field):
		s.Status = StatusLost
	case len(s.Targets) == 0:
		s.Status = StatusWon
	}
	res.Status = s.Status
	return res
}

// MoveLeft shifts the piece one column left. Returns false if blocked.
func (s *State) MoveLeft() bool {
	return s.try(s.Piece.Moved(-1, 0))
}

// MoveRight shifts the piece one column right. Returns false if blocked.
func (s *State) MoveRight() bool {
	return s.try(s.Piece.Moved(1, 0))
}

// Rotate turns the piece one step. Returns false if the new orientation
// would leave the playfield or overlap a block.
func (s *State) Rotate() bool {
	return s.try(s.Piece.Rotated())
}

// SoftDrop moves the piece one row down. Returns false if blocked.
func (s *State) SoftDrop() bool {
	return s.try(s.Piece.Moved(0, 1))
}

// try commits p as the active piece if the game runs and p fits.
func (s *State) try(p Piece) bool {
	if s.Status != StatusRunning {
		return false
	}
	if !CanPlace(p, s.Field) {
		return false
	}
	s.Piece = p
	return true
}

// Snapshot captures the game state by value.
type Snapshot struct {
	Ticks       uint64
	Status      Status
	Field       *Field
	Piece       Piece
	Targets     []Target
	Connections []Connection
}

// Snapshot returns a deep copy safe to hand to a renderer.
func (s *State) Snapshot() Snapshot {
	targets := make([]Target, len(s.Targets))
	copy(targets, s.Targets)
	conns := make([]Connection, len(s.Connections))
	for i, c := range s.Connections {
		conns[i] = Connection{
			Target:    c.Target,
			Connected: c.Connected,
			RegionA:   append([]Coord(nil), c.RegionA...),
			RegionB:   append([]Coord(nil), c.RegionB...),
		}
	}
	return Snapshot{
		Ticks:       s.Ticks,
		Status:      s.Status,
		Field:       s.Field.Clone(),
		Piece:       s.Piece,
		Targets:     targets,
		Connections: conns,
	}
}
