package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/linkfall-game/linkfall/internal/core"
	"github.com/linkfall-game/linkfall/internal/games/linkfall"
	"github.com/linkfall-game/linkfall/internal/platform/tui"
	"github.com/linkfall-game/linkfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: linkfall).

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate
  Down, S, Space   - Soft drop
  P/Esc            - Pause
  R                - Restart (any time)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  linkfall play
  linkfall play linkfall_wide --seed 7
  linkfall play --config ./my-linkfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// runtimeConfig probes the terminal and builds the runtime config from flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := linkfall.ModeClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'linkfall list' to see available modes.", gameID)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := setupLogging(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := setupLogging(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Return to the menu after each game until the player quits
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		if res.Quit {
			return
		}
		cfg = res.Config

		game, err := registry.Create(res.GameID)
		if err != nil {
			closeLog()
			fail("creating game: %v", err)
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			closeLog()
			fail("running game: %v", err)
		}
	}
}
