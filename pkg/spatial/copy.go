package spatial

import (
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// CopyInto writes cast(src) into dst over the intersection of their domains
// and returns the number of cells written.
func CopyInto[D, S any](dst grid.Grid[D], src grid.Grid[S], cast func(S) D) int {
	r := geom.Intersect(dst.Bounds(), src.Bounds())
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			dst.Set(x, y, cast(src.At(x, y)))
		}
	}
	return r.Area()
}

// Copy duplicates src into a new dense grid over the same domain.
func Copy[T any](src grid.Grid[T]) *grid.Dense[T] {
	if d, ok := src.(*grid.Dense[T]); ok {
		return d.Clone()
	}
	return Convert(src, func(v T) T { return v })
}

// Convert duplicates src into a new dense grid, passing every value through
// cast.
func Convert[D, S any](src grid.Grid[S], cast func(S) D) *grid.Dense[D] {
	out := grid.NewRect[D](src.Bounds())
	CopyInto(out, src, cast)
	return out
}

// Replace overwrites every cell equal to old with v and returns how many
// cells changed.
func Replace[T comparable](g grid.Grid[T], old, v T) int {
	n := 0
	r := g.Bounds()
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			if g.At(x, y) == old {
				g.Set(x, y, v)
				n++
			}
		}
	}
	return n
}

// Select returns a mask over g's domain set wherever g holds v.
func Select[T comparable](g grid.Grid[T], v T) *grid.Bits {
	r := g.Bounds()
	mask := grid.NewBitsRect(r)
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			mask.Set(x, y, g.At(x, y) == v)
		}
	}
	return mask
}

// FillMask stores v in every cell of g whose mask bit is set. Cells outside
// the mask's domain are left alone.
func FillMask[T any](g grid.Grid[T], mask grid.Grid[bool], v T) {
	r := geom.Intersect(g.Bounds(), mask.Bounds())
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			if mask.At(x, y) {
				g.Set(x, y, v)
			}
		}
	}
}

// Rand is the random source consumed by Scatter. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Scatter draws one number in [0, 1) per cell, in row-major order, and
// stores v in the cells whose draw exceeds threshold. A threshold of 0.55
// leaves roughly 45% of the cells set to v.
func Scatter[T any](g grid.Grid[T], v T, threshold float64, rng Rand) int {
	n := 0
	r := g.Bounds()
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			if rng.Float64() > threshold {
				g.Set(x, y, v)
				n++
			}
		}
	}
	return n
}

// Ray collects up to length values starting at first and stepping by dir.
// It stops early at the edge of g's domain.
func Ray[T any](g grid.Grid[T], first geom.Point, length int, dir geom.Point) []T {
	var out []T
	r := g.Bounds()
	for i := 0; i < length; i++ {
		p := first.Add(dir.Mul(i))
		if !r.Contains(p) {
			break
		}
		out = append(out, g.At(p.X, p.Y))
	}
	return out
}

// ToSlice lists g's values in row-major order.
func ToSlice[T any](g grid.Grid[T]) []T {
	out := make([]T, 0, g.Bounds().Area())
	for _, v := range grid.All(g) {
		out = append(out, v)
	}
	return out
}

// FromSlice builds a dense grid over r from vals in row-major order. Extra
// values are ignored; missing ones leave the zero value.
func FromSlice[T any](r geom.Rect, vals []T) *grid.Dense[T] {
	out := grid.NewRect[T](r)
	copy(out.Cells(), vals)
	return out
}
