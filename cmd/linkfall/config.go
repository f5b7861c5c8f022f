package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linkfall-game/linkfall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Search order:
  --config <path>
  ~/.linkfall/configs/linkfall.yaml
  ./configs/linkfall.yaml
  built-in defaults

Examples:
  linkfall config
  linkfall config --defaults > ~/.linkfall/configs/linkfall.yaml
  linkfall config --config ./my-linkfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file with comments")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
