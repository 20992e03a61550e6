package grid

import (
	"log/slog"

	"gridkit/pkg/geom"
)

// Dense stores one value per cell in a row-major slice. The zero value is an
// empty grid with no storage.
type Dense[T any] struct {
	rect      geom.Rect
	cells     []T
	unchecked bool
}

// New allocates a w*h grid anchored at the origin.
func New[T any](w, h int, opts ...Option) *Dense[T] {
	return NewRect[T](geom.Sized(w, h), opts...)
}

// NewFilled allocates a w*h grid with every cell set to v.
func NewFilled[T any](w, h int, v T, opts ...Option) *Dense[T] {
	return NewRectFilled(geom.Sized(w, h), v, opts...)
}

// NewRect allocates a grid covering r.
func NewRect[T any](r geom.Rect, opts ...Option) *Dense[T] {
	o := buildOptions(opts)
	return &Dense[T]{rect: r, cells: make([]T, r.Area()), unchecked: o.unchecked}
}

// NewRectFilled allocates a grid covering r with every cell set to v.
func NewRectFilled[T any](r geom.Rect, v T, opts ...Option) *Dense[T] {
	d := NewRect[T](r, opts...)
	d.Fill(v)
	return d
}

// Bounds returns the domain.
func (d *Dense[T]) Bounds() geom.Rect { return d.rect }

// Valid reports whether storage has been allocated.
func (d *Dense[T]) Valid() bool { return d.cells != nil }

// Cells exposes the backing slice in row-major order.
func (d *Dense[T]) Cells() []T { return d.cells }

// Index returns the backing slice position of (x, y).
func (d *Dense[T]) Index(x, y int) int {
	if !d.unchecked && !d.rect.ContainsXY(x, y) {
		panic(&RangeError{X: x, Y: y, Bounds: d.rect})
	}
	return (x - d.rect.X1) + (y-d.rect.Y1)*d.rect.Width()
}

// At returns the value at (x, y).
func (d *Dense[T]) At(x, y int) T {
	return d.cells[d.Index(x, y)]
}

// Set stores v at (x, y).
func (d *Dense[T]) Set(x, y int, v T) {
	d.cells[d.Index(x, y)] = v
}

// Ptr returns a pointer to the cell at (x, y) for in-place mutation. The
// pointer is invalidated by Resize and Assign.
func (d *Dense[T]) Ptr(x, y int) *T {
	return &d.cells[d.Index(x, y)]
}

// Fill sets every cell to v.
func (d *Dense[T]) Fill(v T) {
	for i := range d.cells {
		d.cells[i] = v
	}
}

// FillFunc sets every cell, in row-major order, to a fresh value from fn.
func (d *Dense[T]) FillFunc(fn func() T) {
	for i := range d.cells {
		d.cells[i] = fn()
	}
}

// Clone returns a deep copy.
func (d *Dense[T]) Clone() *Dense[T] {
	c := &Dense[T]{rect: d.rect, unchecked: d.unchecked}
	if d.cells != nil {
		c.cells = make([]T, len(d.cells))
		copy(c.cells, d.cells)
	}
	return c
}

// Assign replaces d's storage with a deep copy of src and adopts its domain
// and bounds-check option, as Clone does.
func (d *Dense[T]) Assign(src *Dense[T]) {
	if d == src {
		return
	}
	d.rect = src.rect
	d.unchecked = src.unchecked
	d.cells = nil
	if src.cells != nil {
		d.cells = make([]T, len(src.cells))
		copy(d.cells, src.cells)
	}
}

// Resize moves d onto the domain r. Cells present in both the old and the new
// domain keep their values; new cells are set to fill. The old storage is
// released.
func (d *Dense[T]) Resize(r geom.Rect, fill T) {
	next := make([]T, r.Area())
	w := r.Width()
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			i := (x - r.X1) + (y-r.Y1)*w
			if d.cells != nil && d.rect.ContainsXY(x, y) {
				next[i] = d.cells[(x-d.rect.X1)+(y-d.rect.Y1)*d.rect.Width()]
				continue
			}
			next[i] = fill
		}
	}
	Logger().Debug("grid: dense resize",
		slog.String("from", d.rect.String()),
		slog.String("to", r.String()),
		slog.Int("cells", len(next)))
	d.rect = r
	d.cells = next
}
