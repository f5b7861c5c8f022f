// linkfall is a falling-block puzzle for the terminal: land pieces so that
// each pair of colored targets becomes linked by blocks of its color.
//
// Usage:
//
//	linkfall                  - Pick a mode from the menu and play
//	linkfall list             - List available modes
//	linkfall play [mode]      - Play a mode directly
//	linkfall simulate [mode]  - Run a headless game with a random bot
//	linkfall config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/linkfall-game/linkfall/internal/games/linkfall"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkfall",
	Short: "Linkfall - link colored targets with falling blocks",
	Long: `Linkfall is a falling-block puzzle played in the terminal.

Each round places pairs of colored targets near the bottom of the board.
Land pieces so that every pair is joined by a run of blocks of its color.
Linked regions vanish; link every pair to win, top out to lose.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  simulate  - Run a headless game driven by a random bot
  config    - Print the effective configuration

Examples:
  linkfall
  linkfall play linkfall_wide
  linkfall simulate --ticks 5000 --seed 42
  linkfall play --config ./my-linkfall.yaml --log-file linkfall.log`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the logger and hands it to the game package.
// Logs go to --log-file when set, otherwise to fallback.
// The returned function closes the log file.
func setupLogging(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "linkfall",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	linkfall.SetConfigPath(flagConfig)
	linkfall.SetLogger(logger)
	return logger, closeFn, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
