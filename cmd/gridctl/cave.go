package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gridkit/internal/render"
	"gridkit/internal/sims/cave"
	"gridkit/pkg/spatial"
)

type caveOptions struct {
	cfg         cave.Config
	boundary    string
	steps       int
	keepLargest bool
	pngPath     string
	scale       int
	glyphs      string
	noMap       bool
}

type caveReport struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Seed     int64      `json:"seed"`
	Fill     float64    `json:"fill"`
	Birth    int        `json:"birth"`
	Boundary string     `json:"boundary"`
	Steps    int        `json:"steps"`
	Filled   int        `json:"filled"`
	Stats    cave.Stats `json:"stats"`
	Map      []string   `json:"map,omitempty"`
}

func newCaveCmd(root *rootOptions) *cobra.Command {
	opts := &caveOptions{cfg: cave.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "cave",
		Short: "Grow a cave map",
		Long: `The cave command scatters walls at random and smooths them with the
cave automaton, then reports the floor regions of the result.

Example:
  gridctl cave --width 80 --height 40 --steps 5
  gridctl cave --keep-largest --png cave.png --scale 4
  gridctl cave --boundary wrap --border=false --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCave(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "map width in cells")
	f.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "map height in cells")
	f.Float64Var(&opts.cfg.Fill, "fill", opts.cfg.Fill, "initial wall probability")
	f.IntVar(&opts.cfg.Birth, "birth", opts.cfg.Birth, "wall neighbours needed to become wall")
	f.BoolVar(&opts.cfg.Border, "border", opts.cfg.Border, "keep the outermost ring solid")
	f.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed")
	f.StringVar(&opts.boundary, "boundary", opts.cfg.Boundary.String(), "neighbour lookup at the edge: clamp or wrap")
	f.IntVar(&opts.steps, "steps", 4, "smoothing passes")
	f.BoolVar(&opts.keepLargest, "keep-largest", false, "fill every floor region but the largest")
	f.StringVar(&opts.pngPath, "png", "", "write the map as a PNG image to this path")
	f.IntVar(&opts.scale, "scale", 1, "pixels per cell in the PNG image")
	f.StringVar(&opts.glyphs, "glyphs", render.DefaultGlyphs, "characters for floor and wall in text output")
	f.BoolVar(&opts.noMap, "no-map", false, "print only the statistics")
	return cmd
}

func runCave(cmd *cobra.Command, root *rootOptions, opts *caveOptions) error {
	if opts.cfg.Width <= 0 || opts.cfg.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", opts.cfg.Width, opts.cfg.Height)
	}
	if opts.cfg.Fill < 0 || opts.cfg.Fill > 1 {
		return fmt.Errorf("fill %v outside [0,1]", opts.cfg.Fill)
	}
	b, err := spatial.ParseBoundary(opts.boundary)
	if err != nil {
		return fmt.Errorf("boundary: %w", err)
	}
	opts.cfg.Boundary = b

	c := cave.New(opts.cfg)
	st := c.Generate(opts.steps)
	filled := 0
	if opts.keepLargest {
		filled = c.KeepLargest()
		st = c.Stats()
	}

	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, c, opts.scale); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	text := render.Text(c.Cells(), opts.glyphs)
	if root.jsonOut {
		rep := caveReport{
			Width: opts.cfg.Width, Height: opts.cfg.Height, Seed: opts.cfg.Seed,
			Fill: opts.cfg.Fill, Birth: opts.cfg.Birth, Boundary: b.String(),
			Steps: opts.steps, Filled: filled, Stats: st,
		}
		if !opts.noMap {
			rep.Map = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		}
		return printJSON(out, rep)
	}

	if !opts.noMap && opts.pngPath == "" {
		fmt.Fprint(out, text)
	}
	fmt.Fprintf(out, "walls=%d floor=%d regions=%d largest=%d", st.Walls, st.Floor, st.Regions, st.Largest)
	if opts.keepLargest {
		fmt.Fprintf(out, " filled=%d", filled)
	}
	fmt.Fprintln(out)
	return nil
}

func writePNG(path string, c *cave.Cave, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	img := render.Image(c.Cells(), c.Palette(), max(scale, 1))
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode image: %w", err)
	}
	return f.Close()
}
