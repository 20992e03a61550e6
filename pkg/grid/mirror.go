package grid

import "gridkit/pkg/geom"

// Swap exchanges the values at a and b.
func Swap[T any](g Grid[T], a, b geom.Point) {
	va := g.At(a.X, a.Y)
	g.Set(a.X, a.Y, g.At(b.X, b.Y))
	g.Set(b.X, b.Y, va)
}

// FlipX mirrors g in place left to right.
func FlipX[T any](g Grid[T]) {
	r := g.Bounds()
	half := r.Width() / 2
	for y := r.Y1; y < r.Y2; y++ {
		for x := 0; x < half; x++ {
			Swap(g, geom.Pt(r.X1+x, y), geom.Pt(r.X2-x-1, y))
		}
	}
}

// FlipY mirrors g in place top to bottom.
func FlipY[T any](g Grid[T]) {
	r := g.Bounds()
	half := r.Height() / 2
	for x := r.X1; x < r.X2; x++ {
		for y := 0; y < half; y++ {
			Swap(g, geom.Pt(x, r.Y1+y), geom.Pt(x, r.Y2-y-1))
		}
	}
}

// Reverse rotates g by 180 degrees in place.
func Reverse[T any](g Grid[T]) {
	r := g.Bounds()
	n := r.Area()
	for i := 0; i < n/2; i++ {
		Swap(g, r.PointAt(i), r.PointAt(n-1-i))
	}
}
