// Package linkfall adapts the Linkfall simulation to the platform's Game
// interface. The simulation itself lives in the engine subpackage.
package linkfall

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/linkfall-game/linkfall/internal/config"
	"github.com/linkfall-game/linkfall/internal/core"
	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
	"github.com/linkfall-game/linkfall/internal/registry"
)

// Game modes. Each mode reads its board size from the config.
const (
	ModeClassic = config.ModeClassic
	ModeWide    = "linkfall_wide"
)

// Package-level settings applied by the CLI before games are created.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger for game events. Nil restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for one Linkfall mode.
type Game struct {
	mode  string
	cfg   *config.LinkfallConfig // Loaded from configPath on Reset when nil
	state *engine.State
	rng   *rand.Rand
	err   error // Last reset failure, shown instead of the board

	frame   time.Duration
	screenW int
	screenH int
	lines   int // Rows cleared since the last reset

	paused   bool
	tooSmall bool
}

// New creates a game for the given mode.
func New(mode string) *Game {
	return &Game{mode: mode}
}

// WithConfig pins the configuration instead of loading it on Reset.
func (g *Game) WithConfig(cfg config.LinkfallConfig) *Game {
	g.cfg = &cfg
	return g
}

func init() {
	registry.Register(ModeClassic, func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(ModeWide, func() registry.Game {
		return New(ModeWide)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeWide {
		return "Linkfall (Wide)"
	}
	return "Linkfall"
}

// Params resolves the engine parameters for this mode.
func Params(mode string, cfg config.LinkfallConfig) engine.Params {
	board := cfg.Board(mode)
	return engine.Params{
		Width:       board.Width,
		Height:      board.Height,
		FallSpeed:   cfg.Piece.FallSpeed,
		TargetCount: cfg.Targets.Count,
		MaxAttempts: cfg.Targets.MaxAttempts,
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.tooSmall = false
	g.lines = 0
	g.err = nil

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)

	lc := g.loadConfig()
	state, err := engine.NewState(Params(g.mode, lc), g.rng)
	if err != nil {
		logger.Error("reset failed", "mode", g.mode, "err", err)
		g.state = nil
		g.err = err
		return
	}
	g.state = state
	logger.Debug("game reset", "mode", g.mode, "seed", cfg.Seed, "targets", len(state.Targets))
}

// loadConfig returns the pinned config, or loads it from configPath.
func (g *Game) loadConfig() config.LinkfallConfig {
	if g.cfg != nil {
		return *g.cfg
	}
	lc, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		return config.DefaultLinkfallConfig()
	}
	return lc
}

// Step applies the frame's input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Restart is allowed at any time
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.frame),
		})
		return core.StepResult{State: g.State()}
	}

	if g.state == nil || g.state.Status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for range in.Count(core.ActionMoveLeft) {
		g.state.MoveLeft()
	}
	for range in.Count(core.ActionMoveRight) {
		g.state.MoveRight()
	}
	for range in.Count(core.ActionRotate) {
		g.state.Rotate()
	}
	for range in.Count(core.ActionSoftDrop) {
		g.state.SoftDrop()
	}

	g.observe(g.state.Tick(g.frame))
	return core.StepResult{State: g.State()}
}

// observe logs the outcome of a tick that locked a piece.
func (g *Game) observe(res engine.TickResult) {
	if !res.Landed() {
		return
	}
	g.lines += len(res.ClearedRows)

	logger.Debug("piece locked", "mode", g.mode, "tick", g.state.Ticks, "cells", res.Locked)
	if len(res.ClearedRows) > 0 {
		logger.Info("rows cleared", "rows", res.ClearedRows, "total", g.lines)
	}
	for _, t := range res.Solved {
		logger.Info("target solved", "color", t.Color, "a", t.A, "b", t.B)
	}

	switch res.Status {
	case engine.StatusWon:
		logger.Info("game won", "mode", g.mode, "tick", g.state.Ticks)
	case engine.StatusLost:
		logger.Info("game lost", "mode", g.mode, "tick", g.state.Ticks, "targets", len(g.state.Targets))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		GameOver: g.state.Status.Terminal(),
		Won:      g.state.Status == engine.StatusWon,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying simulation, nil if the last reset failed.
func (g *Game) Engine() *engine.State {
	return g.state
}

// Err returns the last reset failure.
func (g *Game) Err() error {
	return g.err
}
