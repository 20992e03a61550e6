//go:build ebiten

package main

import (
	"errors"
	"log"

	"gridkit/internal/app"
	"gridkit/internal/core"
	_ "gridkit/internal/sims/briansbrain"
	_ "gridkit/internal/sims/cave"
	_ "gridkit/internal/sims/elementary"
	_ "gridkit/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()
	cfg.Normalize()

	sim, err := core.New(cfg.Sim, cfg.Set)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Names())
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	b := sim.Bounds()

	ebiten.SetWindowTitle("gridkit - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(b.Width()*cfg.Scale+cfg.Panel, b.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
