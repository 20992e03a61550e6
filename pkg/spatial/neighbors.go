package spatial

import (
	"fmt"
	"strings"

	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Neighborhood4 lists the orthogonal offsets, clockwise from north.
var Neighborhood4 = []geom.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Neighborhood8 lists the eight surrounding offsets, clockwise from
// north-west. The cell itself is not included.
var Neighborhood8 = []geom.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	{X: -1, Y: 1}, {X: -1, Y: 0},
}

// Boundary decides where a neighbour that falls outside the domain is read
// from.
type Boundary int

const (
	// Clamp reads the nearest cell on the edge.
	Clamp Boundary = iota
	// Wrap reads the cell on the opposite side, as on a torus.
	Wrap
)

func (b Boundary) String() string {
	switch b {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary accepts "clamp" or "wrap" in any case.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	}
	return Clamp, fmt.Errorf("spatial: unknown boundary %q", s)
}

// Resolve maps p onto a cell of r under the boundary policy.
func (b Boundary) Resolve(r geom.Rect, p geom.Point) geom.Point {
	if b == Wrap {
		return r.Wrap(p)
	}
	return r.Clamp(p)
}

// CountNeighbors counts the set cells among the eight neighbours of p.
func CountNeighbors(g grid.Grid[bool], p geom.Point, b Boundary) int {
	return CountNeighborsFunc(g, p, Neighborhood8, b, func(v bool) bool { return v })
}

// CountNeighborsFunc counts the neighbours of p, taken from hood, whose value
// satisfies pred.
func CountNeighborsFunc[T any](g grid.Grid[T], p geom.Point, hood []geom.Point, b Boundary, pred func(T) bool) int {
	r := g.Bounds()
	n := 0
	for _, d := range hood {
		q := p.Add(d)
		if !r.Contains(q) {
			q = b.Resolve(r, q)
		}
		if pred(g.At(q.X, q.Y)) {
			n++
		}
	}
	return n
}
