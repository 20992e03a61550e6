package grid

import (
	"iter"
	"reflect"

	"gridkit/pkg/geom"
)

// Iterator is a row-major cursor over a grid or a region of it. Step n of a
// traversal over a region of width W starting at (X1, Y1) sits on
// (X1 + n%W, Y1 + n/W). The end position is (X1, Y2) and holds no value.
//
// Iterators compare equal when they walk the same grid over the same region
// and sit at the same step; the cursor coordinates are not compared.
type Iterator[T any] struct {
	g    Grid[T]
	rect geom.Rect
	i    int
	x, y int
}

// Begin returns an iterator on the first cell of g.
func Begin[T any](g Grid[T]) Iterator[T] {
	return RegionBegin(g, g.Bounds())
}

// End returns the iterator one step past the last cell of g.
func End[T any](g Grid[T]) Iterator[T] {
	return RegionEnd(g, g.Bounds())
}

// RegionBegin returns an iterator on the first cell of r ∩ g.Bounds().
func RegionBegin[T any](g Grid[T], r geom.Rect) Iterator[T] {
	r = geom.Intersect(r, g.Bounds())
	return Iterator[T]{g: g, rect: r, x: r.X1, y: r.Y1}
}

// RegionEnd returns the end iterator of r ∩ g.Bounds().
func RegionEnd[T any](g Grid[T], r geom.Rect) Iterator[T] {
	r = geom.Intersect(r, g.Bounds())
	return Iterator[T]{g: g, rect: r, i: r.Area(), x: r.X1, y: r.Y2}
}

// Next advances one cell. It does nothing at the end position.
func (it *Iterator[T]) Next() {
	if it.Done() {
		return
	}
	if it.x == it.rect.X2-1 {
		it.y++
	}
	it.x = (it.x-it.rect.X1+1)%it.rect.Width() + it.rect.X1
	it.i++
}

// Prev steps back one cell. It does nothing on the first cell.
func (it *Iterator[T]) Prev() {
	if it.i == 0 {
		return
	}
	w := it.rect.Width()
	if it.x == it.rect.X1 {
		it.y--
	}
	it.x = (it.x-it.rect.X1-1+w)%w + it.rect.X1
	it.i--
}

// Done reports whether the iterator is at the end position.
func (it Iterator[T]) Done() bool {
	return it.i >= it.rect.Area()
}

// Index returns the number of steps taken from the first cell.
func (it Iterator[T]) Index() int { return it.i }

// Pos returns the cursor position.
func (it Iterator[T]) Pos() geom.Point { return geom.Point{X: it.x, Y: it.y} }

// Value reads the current cell.
func (it Iterator[T]) Value() T {
	it.mustDeref()
	return it.g.At(it.x, it.y)
}

// Set writes v into the current cell.
func (it Iterator[T]) Set(v T) {
	it.mustDeref()
	it.g.Set(it.x, it.y, v)
}

// Cell returns the current position and value.
func (it Iterator[T]) Cell() Cell[T] {
	return Cell[T]{Pos: it.Pos(), Value: it.Value()}
}

// Equal reports whether it and o are at the same step of the same traversal.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.rect == o.rect && it.i == o.i && sameGrid(it.g, o.g)
}

// sameGrid compares grid identity. Grids of non-comparable value types, such
// as structs holding a slice, fall back to reflect.DeepEqual, which accepts
// copies sharing one backing array without walking the cells.
func sameGrid[T any](a, b Grid[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func (it Iterator[T]) mustDeref() {
	if it.Done() {
		panic(&RangeError{X: it.x, Y: it.y, Bounds: it.rect})
	}
}

// All yields every cell of g in row-major order.
func All[T any](g Grid[T]) iter.Seq2[geom.Point, T] {
	return Region(g, g.Bounds())
}

// Region yields the cells of r ∩ g.Bounds() in row-major order.
func Region[T any](g Grid[T], r geom.Rect) iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for it := RegionBegin(g, r); !it.Done(); it.Next() {
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}

// Backward yields every cell of g in reverse row-major order.
func Backward[T any](g Grid[T]) iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for it := End(g); it.Index() > 0; {
			it.Prev()
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}
