package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in scenarios",
	Long: `Shows every built-in scenario with the number of ticks it replays.
Any of the IDs can be passed to 'snake replay'.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	if err := writeScenarioList(os.Stdout, registry.List()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeScenarioList(w io.Writer, scenarios []registry.ScenarioInfo) error {
	if len(scenarios) == 0 {
		_, err := fmt.Fprintln(w, "No scenarios registered.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTICKS\tDESCRIPTION")
	for _, s := range scenarios {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", s.ID, s.Ticks, s.Title)
	}
	fmt.Fprintf(tw, "\n%d scenarios. Replay one with 'snake replay <id>', or pass a script file.\n", len(scenarios))
	return tw.Flush()
}
