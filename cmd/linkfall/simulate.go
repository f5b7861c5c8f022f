package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/linkfall-game/linkfall/internal/core"
	"github.com/linkfall-game/linkfall/internal/games/linkfall"
	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
	"github.com/linkfall-game/linkfall/internal/registry"
)

var (
	flagTicks     int
	flagShowEvery int
	flagScreen    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run a headless game with a random input bot",
	Long: `Run a game without a terminal UI. A seeded bot presses random keys,
and the final board is printed as text. With the same --seed the run is
reproducible.

Board legend:
  .      empty cell
  B Y G P R  locked block (blue, yellow, green, purple, red)
  b y g p r  uncovered target endpoint
  #      falling piece
  =      floor

Examples:
  linkfall simulate --seed 42
  linkfall simulate linkfall_wide --ticks 10000 --show-every 600
  linkfall simulate --screen --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagShowEvery, "show-every", 0, "Print the board every N ticks (0 = final board only)")
	simulateCmd.Flags().BoolVar(&flagScreen, "screen", false, "Print the terminal rendering instead of the text board")
}

// botActions are the inputs the simulation bot picks from.
var botActions = []core.Action{
	core.ActionMoveLeft,
	core.ActionMoveRight,
	core.ActionRotate,
	core.ActionSoftDrop,
}

func runSimulate(cmd *cobra.Command, args []string) {
	gameID := linkfall.ModeClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'linkfall list' to see available modes.", gameID)
	}

	logger, closeLog, err := setupLogging(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := linkfall.New(gameID)
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	})
	if err := game.Err(); err != nil {
		closeLog()
		fail("%v", err)
	}
	logger.Info("simulation started", "mode", gameID, "seed", seed, "ticks", flagTicks)

	bot := rand.New(rand.NewSource(seed + 1))
	in := core.NewInputFrame()
	tick := 0
	for ; tick < flagTicks && !game.State().GameOver; tick++ {
		in.Clear()
		// Roughly one key press every four frames
		if bot.Intn(4) == 0 {
			in.Set(botActions[bot.Intn(len(botActions))])
		}
		game.Step(in)

		if flagShowEvery > 0 && tick%flagShowEvery == 0 {
			printBoard(game)
			fmt.Println()
		}
	}

	printBoard(game)
	status := game.Engine().Status
	fmt.Printf("\nResult: %s after %d ticks (seed %d, %d targets left)\n",
		status, tick, seed, len(game.Engine().Targets))
	logger.Info("simulation finished", "status", status, "ticks", tick)
}

// printBoard writes the current game to stdout.
func printBoard(game *linkfall.Game) {
	if flagScreen {
		screen := core.NewScreen(80, 24)
		game.Render(screen)
		fmt.Println(screen.String())
		return
	}
	fmt.Print(engine.RenderASCII(game.Engine()))
}
