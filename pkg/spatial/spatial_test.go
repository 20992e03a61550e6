package spatial

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

func TestEqualComparesOverlap(t *testing.T) {
	a := grid.NewRectFilled(geom.Build(0, 0, 10, 10), 1)
	b := grid.NewRectFilled(geom.Build(5, 5, 10, 10), 1)
	require.True(t, Equal[int](a, b))

	a.Set(9, 9, 2)
	require.False(t, Equal[int](a, b))

	a.Set(0, 0, 3)
	a.Set(9, 9, 1)
	require.True(t, Equal[int](a, b), "cell outside the overlap is ignored")

	far := grid.NewRectFilled(geom.Build(50, 50, 2, 2), 7)
	require.True(t, Equal[int](a, far))
}

func TestEqualFuncAcrossTypes(t *testing.T) {
	a := grid.NewFilled(3, 3, 4)
	b := grid.NewFilled(3, 3, "4")
	require.True(t, EqualFunc[int, string](a, b, func(x int, s string) bool { return strconv.Itoa(x) == s }))
}

func TestCopyIntoIntersection(t *testing.T) {
	src := grid.NewRectFilled(geom.Build(2, 2, 4, 4), 5)
	dst := grid.NewFilled(4, 4, 0.0)

	n := CopyInto[float64, int](dst, src, func(v int) float64 { return float64(v) / 2 })
	require.Equal(t, 4, n)
	assert.Equal(t, 2.5, dst.At(3, 3))
	assert.Equal(t, 0.0, dst.At(1, 1))
}

func TestCopyAndConvert(t *testing.T) {
	src := grid.NewRectFilled(geom.Build(1, 1, 3, 3), 2)
	v := grid.NewView[int](src, geom.Build(2, 2, 2, 2))

	c := Copy[int](v)
	require.Equal(t, v.Bounds(), c.Bounds())
	c.Set(2, 2, 9)
	require.Equal(t, 2, src.At(2, 2))

	d := Copy[int](src)
	require.NotSame(t, src, d)
	require.Equal(t, src.Cells(), d.Cells())

	s := Convert[string, int](src, strconv.Itoa)
	require.Equal(t, "2", s.At(3, 3))
}

func TestReplaceSelectFillMask(t *testing.T) {
	g := grid.NewFilled(4, 4, '.')
	g.Set(1, 1, '#')
	g.Set(2, 2, '#')

	mask := Select[rune](g, '#')
	require.Equal(t, 2, mask.Count())

	require.Equal(t, 2, Replace[rune](g, '#', '~'))
	require.Zero(t, Select[rune](g, '#').Count())

	FillMask[rune](g, mask, '@')
	require.Equal(t, '@', g.At(1, 1))
	require.Equal(t, '@', g.At(2, 2))
	require.Equal(t, '.', g.At(0, 0))

	small := grid.NewBitsRect(geom.Build(3, 3, 5, 5))
	small.Fill(true)
	FillMask[rune](g, small, 'x')
	require.Equal(t, 'x', g.At(3, 3))
	require.Equal(t, '.', g.At(0, 3))
}

func TestScatter(t *testing.T) {
	g := grid.New[bool](100, 100)
	n := Scatter[bool](g, true, 0.55, rand.New(rand.NewPCG(1, 2)))
	require.Equal(t, n, Select[bool](g, true).Count())
	assert.InDelta(t, 4500, n, 300)

	require.Zero(t, Scatter[bool](grid.New[bool](10, 10), true, 1, rand.New(rand.NewPCG(1, 2))))

	a := grid.New[int](20, 20)
	b := grid.New[int](20, 20)
	Scatter[int](a, 1, 0.5, rand.New(rand.NewPCG(9, 9)))
	Scatter[int](b, 1, 0.5, rand.New(rand.NewPCG(9, 9)))
	require.Equal(t, a.Cells(), b.Cells())
}

func TestRayStopsAtEdge(t *testing.T) {
	g := grid.New[int](5, 5)
	for i := range g.Cells() {
		g.Cells()[i] = i
	}
	require.Equal(t, []int{0, 6, 12, 18, 24}, Ray[int](g, geom.Pt(0, 0), 10, geom.Pt(1, 1)))
	require.Equal(t, []int{12, 11}, Ray[int](g, geom.Pt(2, 2), 2, geom.Pt(-1, 0)))
	require.Empty(t, Ray[int](g, geom.Pt(-1, 0), 3, geom.Pt(1, 0)))
}

func TestSliceRoundTrip(t *testing.T) {
	r := geom.Build(-1, 4, 3, 2)
	vals := []string{"a", "b", "c", "d", "e", "f"}
	g := FromSlice(r, vals)
	require.Equal(t, "d", g.At(-1, 5))
	require.Equal(t, vals, ToSlice[string](g))

	short := FromSlice(r, vals[:2])
	require.Equal(t, []string{"a", "b", "", "", "", ""}, ToSlice[string](short))
}

func TestFloodFillConnectivity(t *testing.T) {
	region := grid.NewFilled(5, 5, 0)
	result := grid.NewBits(5, 5)
	n, err := FloodFill[int](geom.Pt(2, 2), region, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 25, n)
	require.Equal(t, 25, result.Count())

	region.Set(2, 3, 1)
	result = grid.NewBits(5, 5)
	n, err = FloodFill[int](geom.Pt(2, 2), region, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 24, n)
	require.False(t, result.At(2, 3))

	result = grid.NewBits(5, 5)
	n, err = FloodFill[int](geom.Pt(2, 2), region, result, FloodOptions{Edge: true})
	require.NoError(t, err)
	require.Equal(t, 25, n)
}

func TestFloodFillWalls(t *testing.T) {
	// a wall of 1s splitting the 0s into two regions
	region := FromSlice(geom.Sized(5, 5), []int{
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 1, 1,
		1, 1, 1, 0, 0,
		0, 0, 1, 0, 0,
	})

	result := grid.NewBits(5, 5)
	n, err := FloodFill[int](geom.Pt(0, 0), region, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 6, n)

	result = grid.NewBits(5, 5)
	n, err = FloodFill[int](geom.Pt(0, 0), region, result, FloodOptions{Edge: true})
	require.NoError(t, err)
	require.Equal(t, 6+5, n, "wall cells touching the region are marked")
	require.True(t, result.At(2, 0))
	require.False(t, result.At(3, 0))
}

func TestFloodFillDiagonal(t *testing.T) {
	checker := FromSlice(geom.Sized(3, 3), []int{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})
	result := grid.NewBits(3, 3)
	n, err := FloodFill[int](geom.Pt(0, 0), checker, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	result = grid.NewBits(3, 3)
	n, err = FloodFill[int](geom.Pt(0, 0), checker, result, FloodOptions{Diagonal: true})
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.True(t, result.At(2, 2))
}

func TestFloodFillClipsToResult(t *testing.T) {
	region := grid.NewFilled(10, 10, 0)
	result := grid.NewBitsRect(geom.Build(2, 2, 3, 3))
	n, err := FloodFill[int](geom.Pt(3, 3), region, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 9, n)

	_, err = FloodFill[int](geom.Pt(0, 0), region, result, FloodOptions{})
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestFloodFillSkipsMarked(t *testing.T) {
	region := grid.NewFilled(3, 3, 0)
	result := grid.NewBits(3, 3)
	result.Set(1, 0, true)
	result.Set(1, 1, true)
	result.Set(1, 2, true)

	n, err := FloodFill[int](geom.Pt(0, 0), region, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.False(t, result.At(2, 2))
}

func TestFloodFillLargeRegion(t *testing.T) {
	region := grid.NewFilled(1000, 1000, uint8(0))
	result := grid.NewBits(1000, 1000)
	n, err := FloodFill[uint8](geom.Pt(500, 500), region, result, FloodOptions{})
	require.NoError(t, err)
	require.Equal(t, 1000*1000, n)
}

func TestRegions(t *testing.T) {
	g := FromSlice(geom.Sized(4, 3), []int{
		0, 0, 1, 1,
		2, 0, 1, 0,
		2, 2, 2, 0,
	})
	labels, n := Regions[int](g)
	require.Equal(t, 4, n)
	require.Equal(t, []int{
		0, 0, 1, 1,
		2, 0, 1, 3,
		2, 2, 2, 3,
	}, labels.Cells())

	_, n = Regions[int](grid.New[int](0, 0))
	require.Zero(t, n)
}

func TestCountNeighbors(t *testing.T) {
	g := grid.NewBits(3, 3)
	g.Fill(true)
	require.Equal(t, 8, CountNeighbors(g, geom.Pt(1, 1), Clamp), "the cell itself is not counted")

	corner := grid.NewBits(4, 4)
	corner.Set(3, 3, true)
	assert.Equal(t, 1, CountNeighbors(corner, geom.Pt(0, 0), Wrap))
	assert.Equal(t, 0, CountNeighbors(corner, geom.Pt(0, 0), Clamp))

	// clamping folds the outside neighbours of a corner onto the corner itself
	assert.Equal(t, 3, CountNeighbors(corner, geom.Pt(3, 3), Clamp))

	cells := grid.NewFilled(3, 3, 'a')
	cells.Set(1, 0, 'b')
	cells.Set(0, 1, 'b')
	n := CountNeighborsFunc[rune](cells, geom.Pt(1, 1), Neighborhood4, Clamp, func(r rune) bool { return r == 'b' })
	require.Equal(t, 2, n)
}

func TestParseBoundary(t *testing.T) {
	for in, want := range map[string]Boundary{"wrap": Wrap, "CLAMP": Clamp, " Wrap ": Wrap} {
		b, err := ParseBoundary(in)
		require.NoError(t, err)
		require.Equal(t, want, b)
		require.Equal(t, want, mustParse(t, b.String()))
	}
	_, err := ParseBoundary("mirror")
	require.Error(t, err)
}

func mustParse(t *testing.T, s string) Boundary {
	t.Helper()
	b, err := ParseBoundary(s)
	require.NoError(t, err)
	return b
}

func TestAutomatonDeterministic(t *testing.T) {
	seed := grid.NewBits(64, 48)
	Scatter[bool](seed, true, 0.55, rand.New(rand.NewPCG(3, 4)))

	for _, b := range []Boundary{Clamp, Wrap} {
		x, y := seed.Clone(), seed.Clone()
		Automaton(x, 5, b)
		Automaton(y, 5, b)
		require.Equal(t, x.Words(), y.Words(), "boundary %v", b)

		d := seed.Expand()
		Automaton(d, 5, b)
		for p, v := range grid.All[bool](d) {
			require.Equal(t, v, x.At(p.X, p.Y), "boundary %v cell %v", b, p)
		}
	}
}

func TestAutomatonTwoPass(t *testing.T) {
	// a horizontal bar: each cell's outcome must use the counts from before
	// the step, not the cells already rewritten to its left
	g := FromSlice(geom.Sized(5, 3), []bool{
		false, false, false, false, false,
		true, true, true, true, true,
		false, false, false, false, false,
	})
	Automaton(g, 3, Wrap)
	for x := 0; x < 5; x++ {
		require.True(t, g.At(x, 0), "x=%d", x)
		require.True(t, g.At(x, 2), "x=%d", x)
		require.False(t, g.At(x, 1), "x=%d", x)
	}
}

func TestAutomatonEmptyDomain(t *testing.T) {
	g := grid.NewBitsRect(geom.Build(4, 4, 0, 0))
	Automaton(g, 4, Wrap)
	require.Zero(t, g.Count())
}

func TestEvolveBlinker(t *testing.T) {
	life := LifeLike([]int{3}, []int{2, 3})
	g := grid.NewBits(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	Evolve(g, Wrap, life)
	require.Equal(t, 3, g.Count())
	for y := 1; y <= 3; y++ {
		require.True(t, g.At(2, y))
	}
	Evolve(g, Wrap, life)
	require.True(t, g.At(1, 2))
	require.True(t, g.At(3, 2))
	require.False(t, g.At(2, 1))
}

func TestSwizzle(t *testing.T) {
	g := FromSlice(geom.Build(10, 20, 2, 3), []int{0, 1, 2, 3, 4, 5})
	s := Swizzle[int](g)
	require.Equal(t, geom.Build(20, 10, 3, 2), s.Bounds())
	for p, v := range grid.All[int](g) {
		require.Equal(t, v, s.At(p.Y, p.X))
	}
	require.True(t, Equal[int](g, Swizzle[int](s)))
}

func TestRotate(t *testing.T) {
	g := FromSlice(geom.Sized(2, 3), []int{
		0, 1,
		2, 3,
		4, 5,
	})
	tests := []struct {
		turns int
		size  geom.Rect
		want  []int
	}{
		{0, geom.Sized(2, 3), []int{0, 1, 2, 3, 4, 5}},
		{1, geom.Sized(3, 2), []int{4, 2, 0, 5, 3, 1}},
		{2, geom.Sized(2, 3), []int{5, 4, 3, 2, 1, 0}},
		{3, geom.Sized(3, 2), []int{1, 3, 5, 0, 2, 4}},
		{-1, geom.Sized(3, 2), []int{1, 3, 5, 0, 2, 4}},
		{6, geom.Sized(2, 3), []int{5, 4, 3, 2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.turns), func(t *testing.T) {
			out := Rotate[int](g, tt.turns)
			require.Equal(t, tt.size, out.Bounds())
			require.Equal(t, tt.want, out.Cells())
		})
	}

	four := Rotate[int](Rotate[int](Rotate[int](Rotate[int](g, 1), 1), 1), 1)
	require.Equal(t, g.Cells(), four.Cells())
}
