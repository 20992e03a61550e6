package grid

import "gridkit/pkg/geom"

// View restricts another grid to a sub-rectangle without copying. It uses
// the source's absolute coordinates and never owns storage.
//
// A view keeps its source reachable for as long as the view itself is. If
// the source is later resized so that it no longer covers the view, accesses
// fail with the source's *RangeError.
type View[T any] struct {
	rect geom.Rect
	src  Grid[T]
}

// NewView returns a view of src limited to r ∩ src.Bounds().
func NewView[T any](src Grid[T], r geom.Rect) *View[T] {
	return &View[T]{rect: clip(r, src.Bounds()), src: src}
}

// Bounds returns the view's domain.
func (v *View[T]) Bounds() geom.Rect { return v.rect }

// Source returns the grid being viewed.
func (v *View[T]) Source() Grid[T] { return v.src }

// Valid reports the source's validity.
func (v *View[T]) Valid() bool { return v.src != nil && v.src.Valid() }

// At reads (x, y) from the source.
func (v *View[T]) At(x, y int) T {
	if !v.rect.ContainsXY(x, y) {
		panic(&RangeError{X: x, Y: y, Bounds: v.rect})
	}
	return v.src.At(x, y)
}

// Set writes (x, y) through to the source.
func (v *View[T]) Set(x, y int, val T) {
	if !v.rect.ContainsXY(x, y) {
		panic(&RangeError{X: x, Y: y, Bounds: v.rect})
	}
	v.src.Set(x, y, val)
}

// Resize moves the view onto r, clamped to the source's current domain.
func (v *View[T]) Resize(r geom.Rect) {
	v.rect = clip(r, v.src.Bounds())
}
