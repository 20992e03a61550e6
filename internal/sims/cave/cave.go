// Package cave grows cave maps with the classic smoothing automaton: scatter
// walls at random, then repeatedly turn a cell into wall when enough of its
// neighbours are walls.
package cave

import (
	"image/color"
	"log/slog"
	"strconv"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/spatial"
)

// Display values.
const (
	Floor uint8 = 0
	Wall  uint8 = 1
)

// Config holds parameters for cave generation.
type Config struct {
	Width    int
	Height   int
	Fill     float64
	Birth    int
	Boundary spatial.Boundary
	Border   bool
	Seed     int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, Fill: 0.45, Birth: 5, Boundary: spatial.Clamp, Border: true, Seed: 42}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
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
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 9 {
			c.Birth = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := spatial.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["border"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Border = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

var cavePalette = []color.RGBA{
	Floor: {R: 36, G: 30, B: 26, A: 255},
	Wall:  {R: 150, G: 140, B: 120, A: 255},
}

// Stats summarizes the floor connectivity of a cave.
type Stats struct {
	Walls   int `json:"walls"`
	Floor   int `json:"floor"`
	Regions int `json:"regions"`
	Largest int `json:"largest"`
}

// Cave holds a wall mask and its display buffer.
type Cave struct {
	cfg     Config
	walls   *grid.Bits
	display *grid.Dense[uint8]
}

// New creates a cave with the given configuration. The mask starts empty;
// call Reset to scatter walls.
func New(cfg Config) *Cave {
	r := geom.Sized(cfg.Width, cfg.Height)
	return &Cave{cfg: cfg, walls: grid.NewBitsRect(r), display: grid.NewRect[uint8](r)}
}

// Name returns the simulation identifier.
func (c *Cave) Name() string { return "cave" }

// Bounds returns the map domain.
func (c *Cave) Bounds() geom.Rect { return c.walls.Bounds() }

// Cells exposes the display grid of Floor and Wall values.
func (c *Cave) Cells() grid.Grid[uint8] { return c.display }

// Palette maps display values to colors.
func (c *Cave) Palette() []color.RGBA { return cavePalette }

// Walls exposes the wall mask.
func (c *Cave) Walls() *grid.Bits { return c.walls }

// Config returns the active configuration.
func (c *Cave) Config() Config { return c.cfg }

// Reset scatters walls so that roughly Fill of the cells are wall.
func (c *Cave) Reset(seed int64) {
	c.cfg.Seed = seed
	c.walls.Fill(false)
	spatial.Scatter[bool](c.walls, true, 1-c.cfg.Fill, core.NewRNG(seed))
	c.seal()
	c.sync()
}

// Step runs one smoothing pass.
func (c *Cave) Step() {
	spatial.Automaton(c.walls, c.cfg.Birth, c.cfg.Boundary)
	c.seal()
	c.sync()
}

// Generate resets with the configured seed and smooths steps times.
func (c *Cave) Generate(steps int) Stats {
	c.Reset(c.cfg.Seed)
	for i := 0; i < steps; i++ {
		c.Step()
	}
	st := c.Stats()
	grid.Logger().Debug("cave: generated",
		slog.Int64("seed", c.cfg.Seed),
		slog.Int("steps", steps),
		slog.Int("regions", st.Regions),
		slog.Int("largest", st.Largest))
	return st
}

// Stats labels the floor regions of the current map.
func (c *Cave) Stats() Stats {
	st := Stats{Walls: c.walls.Count()}
	st.Floor = c.walls.Bounds().Area() - st.Walls

	labels, n := spatial.Regions[bool](c.walls)
	sizes := make([]int, n)
	isWall := make([]bool, n)
	for p, l := range grid.All[int](labels) {
		sizes[l]++
		isWall[l] = c.walls.At(p.X, p.Y)
	}
	for l, size := range sizes {
		if isWall[l] {
			continue
		}
		st.Regions++
		st.Largest = max(st.Largest, size)
	}
	return st
}

// KeepLargest fills every floor region except the largest with wall and
// returns the number of cells filled.
func (c *Cave) KeepLargest() int {
	labels, keep := c.largestRegion()
	filled := 0
	for p, l := range grid.All[int](labels) {
		if l != keep && !c.walls.At(p.X, p.Y) {
			c.walls.Set(p.X, p.Y, true)
			filled++
		}
	}
	c.sync()
	return filled
}

// Layers exposes the largest floor region and the walls bordering floor.
func (c *Cave) Layers() []core.Layer {
	labels, keep := c.largestRegion()
	largest := spatial.Select[int](labels, keep)

	exposed := grid.NewBitsRect(c.walls.Bounds())
	for p, wall := range grid.All[bool](c.walls) {
		if !wall {
			continue
		}
		floor := spatial.CountNeighborsFunc[bool](c.walls, p, spatial.Neighborhood4, spatial.Clamp,
			func(w bool) bool { return !w })
		exposed.Set(p.X, p.Y, floor > 0)
	}
	return []core.Layer{
		{Name: "largest region", Mask: largest},
		{Name: "exposed walls", Mask: exposed},
	}
}

// largestRegion labels the map and returns the label of the biggest floor
// region, or -1 when there is no floor.
func (c *Cave) largestRegion() (*grid.Dense[int], int) {
	labels, n := spatial.Regions[bool](c.walls)
	sizes := make([]int, n)
	for p, l := range grid.All[int](labels) {
		if !c.walls.At(p.X, p.Y) {
			sizes[l]++
		}
	}
	keep := -1
	for l, size := range sizes {
		if size > 0 && (keep < 0 || size > sizes[keep]) {
			keep = l
		}
	}
	return labels, keep
}

// Parameters reports the active configuration.
func (c *Cave) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.cfg.Width),
				core.IntParam("h", "Height", c.cfg.Height),
				core.Int64Param("seed", "Seed", c.cfg.Seed),
			},
		},
		{
			Name: "Smoothing",
			Params: []core.Parameter{
				core.FloatParam("fill", "Initial wall fill", c.cfg.Fill),
				core.IntParam("birth", "Wall birth threshold", c.cfg.Birth),
				core.StringParam("boundary", "Neighbour boundary", c.cfg.Boundary.String()),
				core.BoolParam("border", "Solid border", c.cfg.Border),
			},
		},
	}}
}

// ParameterControls lists the values a viewer may adjust live.
func (c *Cave) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "birth", Label: "Birth", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 9, HasMin: true, HasMax: true},
		{Key: "fill", Label: "Fill", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control.
func (c *Cave) SetIntParameter(key string, value int) bool {
	if key != "birth" || value < 0 || value > 9 {
		return false
	}
	c.cfg.Birth = value
	return true
}

// SetFloatParameter updates a floating point control. A new fill applies on
// the next Reset.
func (c *Cave) SetFloatParameter(key string, value float64) bool {
	if key != "fill" || value < 0 || value > 1 {
		return false
	}
	c.cfg.Fill = value
	return true
}

// seal walls off the outermost ring when Border is set.
func (c *Cave) seal() {
	if !c.cfg.Border {
		return
	}
	r := c.walls.Bounds()
	for p := range r.Points() {
		if r.IsEdge(p) {
			c.walls.Set(p.X, p.Y, true)
		}
	}
}

func (c *Cave) sync() {
	spatial.CopyInto[uint8, bool](c.display, c.walls, func(v bool) uint8 {
		if v {
			return Wall
		}
		return Floor
	})
}

func init() {
	core.Register("cave", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
