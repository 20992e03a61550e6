package spatial

import "gridkit/pkg/grid"

// Swizzle returns the transpose of g: the value at (x, y) moves to (y, x) in
// a grid over the swizzled domain.
func Swizzle[T any](g grid.Grid[T]) *grid.Dense[T] {
	out := grid.NewRect[T](g.Bounds().Swizzle())
	for p, v := range grid.All(g) {
		out.Set(p.Y, p.X, v)
	}
	return out
}

// Rotate returns g turned clockwise (with y pointing down) by turns quarter
// turns. Negative turns rotate counter-clockwise.
func Rotate[T any](g grid.Grid[T], turns int) *grid.Dense[T] {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		out := Swizzle(g)
		grid.FlipX[T](out)
		return out
	case 2:
		out := Copy(g)
		grid.Reverse[T](out)
		return out
	case 3:
		out := Swizzle(g)
		grid.FlipY[T](out)
		return out
	default:
		return Copy(g)
	}
}
