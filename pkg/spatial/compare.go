// Package spatial implements algorithms over grid.Grid: comparison, copying,
// masking, flood fill, cellular automaton steps and axis transforms.
//
// Operations that combine two grids work over the intersection of their
// domains. Operations on an empty domain do nothing.
package spatial

import (
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Equal reports whether a and b agree on every cell of the intersection of
// their domains. Grids over different domains are compared only where they
// overlap, so disjoint grids are always equal.
func Equal[T comparable](a, b grid.Grid[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom comparison.
func EqualFunc[A, B any](a grid.Grid[A], b grid.Grid[B], eq func(A, B) bool) bool {
	r := geom.Intersect(a.Bounds(), b.Bounds())
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			if !eq(a.At(x, y), b.At(x, y)) {
				return false
			}
		}
	}
	return true
}
