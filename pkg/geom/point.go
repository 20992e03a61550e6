package geom

import "fmt"

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Swizzle swaps the X and Y components.
func (p Point) Swizzle() Point {
	return Point{X: p.Y, Y: p.X}
}

// In reports whether p lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
