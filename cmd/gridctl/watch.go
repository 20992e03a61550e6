package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"gridkit/internal/core"
	"gridkit/internal/termview"
)

type watchOptions struct {
	view     termview.Options
	set      map[string]string
	duration time.Duration
}

func newWatchCmd() *cobra.Command {
	opts := &watchOptions{view: termview.Options{TPS: 10, Seed: 42}}
	cmd := &cobra.Command{
		Use:   "watch <sim>",
		Short: "Play a simulation in the terminal",
		Long: `The watch command runs a registered simulation in the terminal, one
character per cell. Arrow keys scroll, space pauses, n steps once, r resets,
s reseeds, [ and ] change speed, Tab picks a parameter and +/- adjust it,
q quits.

Example:
  gridctl watch life --set w=80,h=40
  gridctl watch cave --tps 2 --glyphs " #"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.view.TPS, "tps", opts.view.TPS, "ticks per second")
	f.Int64Var(&opts.view.Seed, "seed", opts.view.Seed, "seed for simulation reset")
	f.StringVar(&opts.view.Glyphs, "glyphs", "", "characters for cell values 0, 1, 2, ...")
	f.BoolVar(&opts.view.Paused, "paused", false, "start paused")
	f.StringToStringVar(&opts.set, "set", nil, "simulation parameters as key=value pairs")
	f.DurationVar(&opts.duration, "duration", 0, "exit after this long, 0 runs until quit")
	return cmd
}

func runWatch(cmd *cobra.Command, name string, opts *watchOptions) error {
	sim, err := core.New(name, opts.set)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, core.Names())
	}
	sim.Reset(opts.view.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	v := termview.New(screen, sim, opts.view)
	err = v.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
