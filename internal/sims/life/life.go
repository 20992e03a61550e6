package life

import (
	"strconv"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/spatial"
)

// Config holds parameters for Conway's Game of Life.
type Config struct {
	Width   int
	Height  int
	Density float64
	Wrap    bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Density: 0.5, Wrap: true}
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	return c
}

var conway = spatial.LifeLike([]int{3}, []int{2, 3})

// Life implements Conway's Game of Life on a packed bit grid.
type Life struct {
	cfg     Config
	board   *grid.Bits
	display *grid.Dense[uint8]
}

// New returns a Life simulation with the provided configuration.
func New(cfg Config) *Life {
	r := geom.Sized(cfg.Width, cfg.Height)
	return &Life{cfg: cfg, board: grid.NewBitsRect(r), display: grid.NewRect[uint8](r)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Bounds returns the board domain.
func (l *Life) Bounds() geom.Rect { return l.board.Bounds() }

// Cells exposes the display grid: 1 for live cells, 0 otherwise.
func (l *Life) Cells() grid.Grid[uint8] { return l.display }

// Board exposes the live-cell mask.
func (l *Life) Board() *grid.Bits { return l.board }

// Population counts the live cells.
func (l *Life) Population() int { return l.board.Count() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.board.Fill(false)
	spatial.Scatter[bool](l.board, true, 1-l.cfg.Density, core.NewRNG(seed))
	l.sync()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	b := spatial.Clamp
	if l.cfg.Wrap {
		b = spatial.Wrap
	}
	spatial.Evolve(l.board, b, conway)
	l.sync()
}

// Set places or clears a live cell and refreshes the display.
func (l *Life) Set(x, y int, alive bool) {
	l.board.Set(x, y, alive)
	l.display.Set(x, y, b2u8(alive))
}

// Parameters reports the active configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", l.cfg.Width),
			core.IntParam("h", "Height", l.cfg.Height),
			core.FloatParam("density", "Initial density", l.cfg.Density),
			core.BoolParam("wrap", "Wrap edges", l.cfg.Wrap),
		},
	}}}
}

func (l *Life) sync() {
	spatial.CopyInto[uint8, bool](l.display, l.board, b2u8)
}

func b2u8(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
