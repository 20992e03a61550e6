// Package geom provides the integer coordinate domain used by the grid
// containers.
//
// Rectangles are half-open: a Rect contains x when X1 <= x < X2 and y when
// Y1 <= y < Y2. A rectangle whose computed width or height is zero is empty.
// An empty rectangle is a valid value and iterates zero times.
package geom

import (
	"fmt"
	"iter"
)

// Rect is an axis-aligned integer rectangle with half-open bounds.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Rt builds a rectangle from two corners, swapping them as needed so that
// X1 <= X2 and Y1 <= Y2.
func Rt(x1, y1, x2, y2 int) Rect {
	return Rect{
		X1: min(x1, x2),
		Y1: min(y1, y2),
		X2: max(x1, x2),
		Y2: max(y1, y2),
	}
}

// Build creates a rectangle from a position and a size.
func Build(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Sized returns a w*h rectangle anchored at the origin.
func Sized(w, h int) Rect {
	return Rect{X2: w, Y2: h}
}

// Boundary returns the smallest rectangle containing every point. With no
// points it returns the empty rectangle.
func Boundary(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{X1: pts[0].X, Y1: pts[0].Y, X2: pts[0].X + 1, Y2: pts[0].Y + 1}
	for _, p := range pts[1:] {
		r.X1 = min(r.X1, p.X)
		r.Y1 = min(r.Y1, p.Y)
		r.X2 = max(r.X2, p.X+1)
		r.Y2 = max(r.Y2, p.Y+1)
	}
	return r
}

// Radius returns the square of cells within Chebyshev distance radius of p.
func Radius(p Point, radius int) Rect {
	return Rect{X1: p.X - radius, Y1: p.Y - radius, X2: p.X + radius + 1, Y2: p.Y + radius + 1}
}

// Width returns the number of columns, never negative.
func (r Rect) Width() int {
	return max(r.X2-r.X1, 0)
}

// Height returns the number of rows, never negative.
func (r Rect) Height() int {
	return max(r.Y2-r.Y1, 0)
}

// Area returns the number of cells in r.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Empty reports whether r holds no cells.
func (r Rect) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Dimensions returns the width and height as a Point.
func (r Rect) Dimensions() Point {
	return Point{X: r.Width(), Y: r.Height()}
}

// Min returns the first cell (X1, Y1).
func (r Rect) Min() Point {
	return Point{X: r.X1, Y: r.Y1}
}

// Max returns the exclusive corner (X2, Y2).
func (r Rect) Max() Point {
	return Point{X: r.X2, Y: r.Y2}
}

// Contains reports whether p is inside r.
func (r Rect) Contains(p Point) bool {
	return r.ContainsXY(p.X, p.Y)
}

// ContainsXY reports whether (x, y) is inside r.
func (r Rect) ContainsXY(x, y int) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// ContainsRect reports whether o lies entirely inside r. An empty o is
// contained by every rectangle.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X1 >= r.X1 && o.Y1 >= r.Y1 && o.X2 <= r.X2 && o.Y2 <= r.Y2
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !Intersect(r, o).Empty()
}

// Intersect returns the overlap of a and b. The result is empty when they do
// not overlap; Intersect(a, b) == Intersect(b, a).
func Intersect(a, b Rect) Rect {
	return Rect{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
}

// Intersect is the method form of Intersect.
func (r Rect) Intersect(o Rect) Rect {
	return Intersect(r, o)
}

// Union returns the smallest rectangle containing both r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
		X2: max(r.X2, o.X2),
		Y2: max(r.Y2, o.Y2),
	}
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Add moves r by p.
func (r Rect) Add(p Point) Rect {
	return r.Translate(p.X, p.Y)
}

// Normalize translates r so that its first cell is the origin.
func (r Rect) Normalize() Rect {
	return Rect{X2: r.X2 - r.X1, Y2: r.Y2 - r.Y1}
}

// Swizzle swaps the x and y axes of r.
func (r Rect) Swizzle() Rect {
	return Rect{X1: r.Y1, Y1: r.X1, X2: r.Y2, Y2: r.X2}
}

// Inset shrinks r by n cells on every side. Negative n grows it.
func (r Rect) Inset(n int) Rect {
	return Rect{X1: r.X1 + n, Y1: r.Y1 + n, X2: r.X2 - n, Y2: r.Y2 - n}
}

// ResizeFromCenter returns a w*h rectangle sharing r's center.
func (r Rect) ResizeFromCenter(w, h int) Rect {
	c := r.Center()
	return Build(c.X-w/2, c.Y-h/2, w, h)
}

// Center returns the middle cell, rounding toward the first cell.
func (r Rect) Center() Point {
	return Point{X: (r.X2-r.X1)/2 + r.X1, Y: (r.Y2-r.Y1)/2 + r.Y1}
}

// UpperLeft returns the first cell.
func (r Rect) UpperLeft() Point { return Point{X: r.X1, Y: r.Y1} }

// UpperRight returns the last cell of the first row.
func (r Rect) UpperRight() Point { return Point{X: r.X2 - 1, Y: r.Y1} }

// BottomLeft returns the first cell of the last row.
func (r Rect) BottomLeft() Point { return Point{X: r.X1, Y: r.Y2 - 1} }

// BottomRight returns the last cell.
func (r Rect) BottomRight() Point { return Point{X: r.X2 - 1, Y: r.Y2 - 1} }

// Corner returns corner i counted clockwise from the upper left. ok is false
// when i is outside 0..3.
func (r Rect) Corner(i int) (p Point, ok bool) {
	switch i {
	case 0:
		return r.UpperLeft(), true
	case 1:
		return r.UpperRight(), true
	case 2:
		return r.BottomRight(), true
	case 3:
		return r.BottomLeft(), true
	}
	return Point{}, false
}

// IsEdge reports whether p lies on the outermost ring of cells of r.
func (r Rect) IsEdge(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.X1 || p.X == r.X2-1 || p.Y == r.Y1 || p.Y == r.Y2-1
}

// Clamp snaps p onto the nearest cell of r. An empty r yields its first
// corner.
func (r Rect) Clamp(p Point) Point {
	if r.Empty() {
		return r.Min()
	}
	return Point{
		X: min(max(p.X, r.X1), r.X2-1),
		Y: min(max(p.Y, r.Y1), r.Y2-1),
	}
}

// Wrap folds p onto r toroidally. An empty r returns p unchanged.
func (r Rect) Wrap(p Point) Point {
	w, h := r.Width(), r.Height()
	if w == 0 || h == 0 {
		return p
	}
	return Point{
		X: ((p.X-r.X1)%w+w)%w + r.X1,
		Y: ((p.Y-r.Y1)%h+h)%h + r.Y1,
	}
}

// Split bisects r along its longer axis. The height is split when it is
// greater than one and greater than the width, otherwise the width is split
// when it is greater than one. The halves meet on the center line. A single
// cell rectangle comes back as two copies of itself.
func (r Rect) Split() (Rect, Rect) {
	a, b := r, r
	c := r.Center()
	switch {
	case r.Height() > 1 && r.Height() > r.Width():
		a.Y2 = c.Y
		b.Y1 = c.Y
	case r.Width() > 1:
		a.X2 = c.X
		b.X1 = c.X
	}
	return a, b
}

// Index returns the row-major position of p relative to the first cell.
func (r Rect) Index(p Point) int {
	return (p.X - r.X1) + (p.Y-r.Y1)*r.Width()
}

// PointAt is the inverse of Index for 0 <= i < Area().
func (r Rect) PointAt(i int) Point {
	w := r.Width()
	if w == 0 {
		return r.Min()
	}
	return Point{X: r.X1 + i%w, Y: r.Y1 + i/w}
}

// Points yields every cell of r in row-major order.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)-[%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
