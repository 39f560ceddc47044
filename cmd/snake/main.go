// snake replays scripted ticks of a snake moving on a toroidal field.
//
// Usage:
//
//	snake list                         - List built-in scenarios
//	snake replay <scenario|file.yaml>  - Replay a scenario or script file
//	snake config                       - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.torus-snake, ./configs)
//	--width, --height   - Override the field size
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/torus-snake/internal/config"

	// Import scenarios to register them
	_ "github.com/vovakirdan/torus-snake/internal/replay/scenarios"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Toroidal snake - replay movement scripts",
	Long: `snake drives a grid snake across a wrap-around field one tick at a time
and prints where every segment ended up.

Available commands:
  list     - Show built-in scenarios
  replay   - Replay a scenario or a YAML script
  config   - Print the effective configuration

Examples:
  snake list
  snake replay wrap-right
  snake replay ./my-script.yaml --format yaml
  snake replay grow --width 12 --height 8`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Field width in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Field height in cells (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies flag overrides.
func loadConfig(flags *pflag.FlagSet) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("width") {
		cfg.Field.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Field.Height = flagHeight
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
