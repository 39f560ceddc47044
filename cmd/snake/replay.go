package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/torus-snake/internal/registry"
	"github.com/vovakirdan/torus-snake/internal/replay"
	"github.com/vovakirdan/torus-snake/internal/snake"
)

var (
	flagFormat string
	flagQuiet  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario|script.yaml>",
	Short: "Replay a scenario or script",
	Long: `Drive a snake through a scripted list of ticks and print its state after
each one.

A script is YAML:

  name: my-run
  field: {width: 10, height: 10}   # optional, defaults to config
  spawn: {x: 5, y: 5}              # optional, tail cell of the initial body
  steps:
    - {dir: right, repeat: 3}
    - {grow: true}                 # food eaten: keep the tail this tick
    - {dir: up}

Output formats:
  table - one row per tick (default on a terminal)
  yaml  - the full result, including every body segment (default when piped)

Examples:
  snake replay wrap-right
  snake replay self-collision --format yaml
  snake replay ./run.yaml --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: table, yaml (default depends on terminal)")
	replayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the final state")
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, cfg.Log.Level)

	script, err := resolveScript(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see built-in scenarios.")
		os.Exit(1)
	}

	script = applyFieldFlags(cmd.Flags(), script)
	field, origin, err := script.Setup(cfg.Runtime())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := snake.NewWithOptions(origin.X, origin.Y, snake.Options{
		AllowReversal: !cfg.Rules.ReversalGuard,
	})
	runner := replay.NewRunner(logger, field, cfg.Rules.StopOnCollision)

	res, err := runner.Run(cmd.Context(), s, script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	format := flagFormat
	if format == "" {
		format = "yaml"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "table"
		}
	}

	if err := writeResult(os.Stdout, res, format, flagQuiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveScript returns a registered scenario's script, or loads arg as a file.
func resolveScript(arg string) (replay.Script, error) {
	if registry.Exists(arg) {
		sc, err := registry.Create(arg)
		if err != nil {
			return replay.Script{}, err
		}
		return sc.Script(), nil
	}
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return replay.LoadScript(arg)
	}
	return replay.Script{}, fmt.Errorf("unknown scenario %q", arg)
}

// applyFieldFlags lets an explicit --width or --height beat the script's own
// field. Without a script field the config already carries the flags.
func applyFieldFlags(flags *pflag.FlagSet, script replay.Script) replay.Script {
	if script.Field == nil {
		return script
	}
	size := *script.Field
	if flags.Changed("width") {
		size.Width = flagWidth
	}
	if flags.Changed("height") {
		size.Height = flagHeight
	}
	script.Field = &size
	return script
}

func writeResult(w io.Writer, res replay.Result, format string, quiet bool) error {
	if quiet {
		res.Frames = nil
	}
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		return writeTable(w, res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeTable(w io.Writer, res replay.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Replay %s on %dx%d field\n\n", res.Script, res.Field.W, res.Field.H)
	if len(res.Frames) > 0 {
		fmt.Fprintln(tw, "TICK\tREQUEST\tHEAD\tDIR\tLEN\tNOTE")
		for _, f := range res.Frames {
			var notes []string
			if f.Grew {
				notes = append(notes, "grew")
			}
			if f.OnTail {
				notes = append(notes, "tail")
			}
			if f.Collided {
				notes = append(notes, "collision")
			}
			fmt.Fprintf(tw, "%d\t%s\t%v\t%s\t%d\t%s\n",
				f.Tick, f.Request, f.State.Head, f.State.Dir, f.State.Len, strings.Join(notes, ","))
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintf(tw, "Final head %v heading %s, %d segments\n", res.Final.Head, res.Final.Dir, res.Final.Len)
	if res.Collided {
		fmt.Fprintf(tw, "Self collision at tick %d\n", res.CollisionTick)
	}
	return tw.Flush()
}
