package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gridkit/pkg/grid"

	_ "gridkit/internal/sims/briansbrain"
	_ "gridkit/internal/sims/cave"
	_ "gridkit/internal/sims/elementary"
	_ "gridkit/internal/sims/life"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	jsonOut bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "gridctl",
		Short: "Generate and inspect grid automata",
		Long: `gridctl drives the gridkit automata headlessly: it grows cave maps,
sweeps smoothing parameters across seeds, lists the registered simulations,
and plays any of them in the terminal.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				grid.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				grid.SetLogger(nil)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log grid operations at debug level to stderr")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")

	cmd.AddCommand(newCaveCmd(opts))
	cmd.AddCommand(newSweepCmd(opts))
	cmd.AddCommand(newSimsCmd(opts))
	cmd.AddCommand(newWatchCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
