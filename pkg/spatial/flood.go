package spatial

import (
	"log/slog"

	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// FloodOptions tunes FloodFill.
type FloodOptions struct {
	// Edge also marks the neighbours whose region value differs, without
	// growing from them.
	Edge bool
	// Diagonal grows through all eight neighbours instead of four.
	Diagonal bool
}

// FloodFill marks in result every cell reachable from seed through
// neighbours holding the seed's region value. The fill is limited to the
// intersection of region's and result's domains and never moves through a
// cell that is already marked. It returns the number of cells it marked.
//
// The work list is an explicit stack, so the size of the region is bounded by
// memory rather than call depth. A seed outside the fill area returns a
// *grid.RangeError.
func FloodFill[T comparable](seed geom.Point, region grid.Grid[T], result grid.Grid[bool], opts FloodOptions) (int, error) {
	area := geom.Intersect(region.Bounds(), result.Bounds())
	if !area.Contains(seed) {
		return 0, &grid.RangeError{X: seed.X, Y: seed.Y, Bounds: area}
	}
	hood := Neighborhood4
	if opts.Diagonal {
		hood = Neighborhood8
	}

	want := region.At(seed.X, seed.Y)
	marked := 0
	if !result.At(seed.X, seed.Y) {
		result.Set(seed.X, seed.Y, true)
		marked++
	}

	stack := []geom.Point{seed}
	peak := 1
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range hood {
			q := p.Add(d)
			if !area.Contains(q) || result.At(q.X, q.Y) {
				continue
			}
			switch {
			case region.At(q.X, q.Y) == want:
				result.Set(q.X, q.Y, true)
				marked++
				stack = append(stack, q)
				peak = max(peak, len(stack))
			case opts.Edge:
				result.Set(q.X, q.Y, true)
				marked++
			}
		}
	}

	grid.Logger().Debug("spatial: flood fill",
		slog.String("seed", seed.String()),
		slog.Int("marked", marked),
		slog.Int("peak_stack", peak))
	return marked, nil
}

// Regions labels the 4-connected regions of equal value in g. Labels start
// at 0 and follow the row-major order of each region's first cell. It
// returns the label grid and the number of regions.
func Regions[T comparable](g grid.Grid[T]) (*grid.Dense[int], int) {
	r := g.Bounds()
	labels := grid.NewRectFilled(r, -1)
	n := 0
	seen := grid.Project(labels,
		func(l int) bool { return l >= 0 },
		func(l *int, v bool) {
			if v {
				*l = n
			}
		})
	for p := range r.Points() {
		if labels.At(p.X, p.Y) >= 0 {
			continue
		}
		// p is inside both domains, so the fill cannot fail.
		_, _ = FloodFill(p, g, seen, FloodOptions{})
		n++
	}
	return labels, n
}
