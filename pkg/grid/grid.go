// Package grid provides bounded 2D containers addressed by absolute integer
// (x, y) coordinates.
//
// Every container implements Grid: a rectangular domain plus indexed reads and
// writes. Dense owns a row-major slice, Bits packs booleans into 64-bit words,
// View restricts another grid to a sub-rectangle without copying, and
// Projection exposes one field of a grid of records.
//
// At and Set panic with a *RangeError for coordinates outside the domain, the
// same way slice indexing fails. Use Lookup and Store when the coordinates
// come from untrusted input.
package grid

import (
	"errors"
	"fmt"

	"gridkit/pkg/geom"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("grid: coordinate not in domain")

// ErrReadOnly is raised by Set on a projection built without a setter.
var ErrReadOnly = errors.New("grid: projection is read-only")

// RangeError reports an access outside a grid's domain.
type RangeError struct {
	X, Y   int
	Bounds geom.Rect
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid: coordinate (%d,%d) not in domain %v", e.X, e.Y, e.Bounds)
}

// Is lets errors.Is(err, ErrOutOfRange) match.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Grid is the contract shared by all containers.
type Grid[T any] interface {
	// Bounds returns the domain of valid coordinates.
	Bounds() geom.Rect
	// At returns the value at (x, y).
	At(x, y int) T
	// Set stores v at (x, y).
	Set(x, y int, v T)
	// Valid reports whether the grid is backed by storage.
	Valid() bool
}

// Cell pairs a position with the value read from it. Cells are snapshots
// and are not kept in sync with the grid.
type Cell[T any] struct {
	Pos   geom.Point
	Value T
}

// CellAt reads the cell at p.
func CellAt[T any](g Grid[T], p geom.Point) Cell[T] {
	return Cell[T]{Pos: p, Value: g.At(p.X, p.Y)}
}

// AtPoint is At addressed by a Point.
func AtPoint[T any](g Grid[T], p geom.Point) T {
	return g.At(p.X, p.Y)
}

// SetPoint is Set addressed by a Point.
func SetPoint[T any](g Grid[T], p geom.Point, v T) {
	g.Set(p.X, p.Y, v)
}

// Lookup returns the value at (x, y) or a *RangeError. It never panics for
// coordinates outside the domain.
func Lookup[T any](g Grid[T], x, y int) (T, error) {
	if r := g.Bounds(); !r.ContainsXY(x, y) {
		var zero T
		return zero, &RangeError{X: x, Y: y, Bounds: r}
	}
	return g.At(x, y), nil
}

// Store writes v at (x, y) or returns a *RangeError.
func Store[T any](g Grid[T], x, y int, v T) error {
	if r := g.Bounds(); !r.ContainsXY(x, y) {
		return &RangeError{X: x, Y: y, Bounds: r}
	}
	g.Set(x, y, v)
	return nil
}

type filler[T any] interface {
	Fill(v T)
}

// Fill overwrites every cell of g with v. Grids with a bulk Fill method use
// it; Bits fills whole words.
func Fill[T any](g Grid[T], v T) {
	if f, ok := g.(filler[T]); ok {
		f.Fill(v)
		return
	}
	FillRect(g, g.Bounds(), v)
}

// FillFunc stores the result of fn in every cell, calling it once per cell in
// row-major order.
func FillFunc[T any](g Grid[T], fn func() T) {
	r := g.Bounds()
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			g.Set(x, y, fn())
		}
	}
}

// clip intersects a with b. Disjoint rectangles collapse to the zero-size
// rectangle at the intersection's upper-left corner, so an empty result never
// reports inverted bounds.
func clip(a, b geom.Rect) geom.Rect {
	r := geom.Intersect(a, b)
	if r.Empty() {
		return geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X1, Y2: r.Y1}
	}
	return r
}

// FillRect overwrites the cells of g that fall inside area.
func FillRect[T any](g Grid[T], area geom.Rect, v T) {
	r := geom.Intersect(g.Bounds(), area)
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			g.Set(x, y, v)
		}
	}
}

// Option configures a container at construction.
type Option func(*options)

type options struct {
	unchecked bool
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBoundsCheck toggles the domain check performed by At and Set. Checks are
// on by default. An unchecked grid trusts its callers: a coordinate outside
// the domain whose linear index still lands inside the backing store reads or
// writes some other cell, and one that does not panics with a runtime index
// error.
func WithBoundsCheck(enabled bool) Option {
	return func(o *options) {
		o.unchecked = !enabled
	}
}
