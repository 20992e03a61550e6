package elementary

import (
	"strconv"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/spatial"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 holds the newest generation; older rows scroll downwards.
type Elementary struct {
	rule uint8
	cur  *grid.Dense[uint8]
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	return &Elementary{rule: cfg.Rule, cur: grid.NewRect[uint8](geom.Sized(cfg.Width, cfg.Height))}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Bounds returns the history grid domain.
func (e *Elementary) Bounds() geom.Rect { return e.cur.Bounds() }

// Cells exposes the history grid.
func (e *Elementary) Cells() grid.Grid[uint8] { return e.cur }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.cur.Fill(0)
	r := e.cur.Bounds()
	if !r.Empty() {
		e.cur.Set(r.Width()/2, 0, 1)
	}
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	r := e.cur.Bounds()
	w := r.Width()
	if r.Empty() {
		return
	}
	prev := spatial.Ray[uint8](e.cur, geom.Pt(0, 0), w, geom.Pt(1, 0))
	cells := e.cur.Cells()
	copy(cells[w:], cells[:w*(r.Height()-1)])
	for x := 0; x < w; x++ {
		left := prev[(x-1+w)%w]
		center := prev[x]
		right := prev[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		e.cur.Set(x, 0, (e.rule>>idx)&1)
	}
}

// Parameters reports the active configuration.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	r := e.cur.Bounds()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", r.Width()),
			core.IntParam("h", "Height", r.Height()),
			core.IntParam("rule", "Wolfram rule", int(e.rule)),
		},
	}}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
