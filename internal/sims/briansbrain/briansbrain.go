package briansbrain

import (
	"image/color"
	"strconv"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/spatial"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var brainPalette = []color.RGBA{
	stateDead:  {A: 255},
	stateOn:    {R: 255, G: 255, B: 255, A: 255},
	stateDying: {R: 40, G: 90, B: 220, A: 255},
}

// Config holds parameters for Brian's Brain.
type Config struct {
	Width  int
	Height int
	// Spark is the chance that a cell starts firing after Reset.
	Spark float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Spark: 0.125}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["spark"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Spark = parsed
		}
	}
	return c
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg Config
	cur *grid.Dense[uint8]
	nxt *grid.Dense[uint8]
}

// New creates a Brain simulation with the provided configuration.
func New(cfg Config) *Brain {
	r := geom.Sized(cfg.Width, cfg.Height)
	return &Brain{cfg: cfg, cur: grid.NewRect[uint8](r), nxt: grid.NewRect[uint8](r)}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Bounds returns the grid domain.
func (b *Brain) Bounds() geom.Rect { return b.cur.Bounds() }

// Cells exposes the current state grid.
func (b *Brain) Cells() grid.Grid[uint8] { return b.cur }

// Palette maps cell states to colors.
func (b *Brain) Palette() []color.RGBA { return brainPalette }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	b.cur.Fill(stateDead)
	spatial.Scatter[uint8](b.cur, stateOn, 1-b.cfg.Spark, core.NewRNG(seed))
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	firing := func(v uint8) bool { return v == stateOn }
	for p, v := range grid.All[uint8](b.cur) {
		switch v {
		case stateOn:
			b.nxt.Set(p.X, p.Y, stateDying)
		case stateDying:
			b.nxt.Set(p.X, p.Y, stateDead)
		default:
			if spatial.CountNeighborsFunc[uint8](b.cur, p, spatial.Neighborhood8, spatial.Wrap, firing) == 2 {
				b.nxt.Set(p.X, p.Y, stateOn)
			} else {
				b.nxt.Set(p.X, p.Y, stateDead)
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// Parameters reports the active configuration.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", b.cfg.Width),
			core.IntParam("h", "Height", b.cfg.Height),
			core.FloatParam("spark", "Initial firing chance", b.cfg.Spark),
		},
	}}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
