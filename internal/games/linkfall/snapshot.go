package linkfall

import "github.com/linkfall-game/linkfall/internal/games/linkfall/engine"

// Snapshot captures the adapter and simulation state for determinism tests.
type Snapshot struct {
	Mode   string
	Paused bool
	Lines  int
	Engine engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:   g.mode,
		Paused: g.paused,
		Lines:  g.lines,
	}
	if g.state != nil {
		snap.Engine = g.state.Snapshot()
	}
	return snap
}
