package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridkit/pkg/geom"
)

func TestIteratorRowMajor(t *testing.T) {
	r := geom.Build(7, 13, 104, 84)
	m := NewRectFilled(r, 0)

	n := 0
	for it := Begin[int](m); !it.Done(); it.Next() {
		require.Equal(t, n, it.Index())
		require.Equal(t, geom.Pt(r.X1+n%r.Width(), r.Y1+n/r.Width()), it.Pos())
		n++
	}
	require.Equal(t, r.Area(), n)
}

func TestIteratorEndPosition(t *testing.T) {
	m := NewRect[int](geom.Build(3, 5, 4, 2))
	it := Begin[int](m)
	for !it.Done() {
		it.Next()
	}
	require.True(t, it.Equal(End[int](m)))
	require.Equal(t, geom.Pt(3, 7), it.Pos())

	it.Next()
	require.Equal(t, 8, it.Index(), "next is a no-op at end")

	require.Panics(t, func() { it.Value() })
	require.Panics(t, func() { it.Set(1) })
}

func TestIteratorPrevMirrorsNext(t *testing.T) {
	m := NewRect[int](geom.Build(-2, -2, 3, 3))
	var fwd []geom.Point
	for it := Begin[int](m); !it.Done(); it.Next() {
		fwd = append(fwd, it.Pos())
	}

	it := End[int](m)
	for i := len(fwd) - 1; i >= 0; i-- {
		it.Prev()
		require.Equal(t, fwd[i], it.Pos())
	}
	require.True(t, it.Equal(Begin[int](m)))

	it.Prev()
	require.Equal(t, geom.Pt(-2, -2), it.Pos(), "prev is a no-op at begin")
}

func TestIteratorEquality(t *testing.T) {
	a := New[int](4, 4)
	b := New[int](4, 4)

	assert.True(t, Begin[int](a).Equal(Begin[int](a)))
	assert.False(t, Begin[int](a).Equal(Begin[int](b)))
	assert.False(t, Begin[int](a).Equal(RegionBegin[int](a, geom.Sized(2, 2))))

	it := Begin[int](a)
	it.Next()
	assert.False(t, it.Equal(Begin[int](a)))
}

func TestIteratorSetsThrough(t *testing.T) {
	m := New[int](3, 2)
	v := 10
	for it := Begin[int](m); !it.Done(); it.Next() {
		it.Set(v)
		v++
	}
	require.Equal(t, []int{10, 11, 12, 13, 14, 15}, m.Cells())

	it := Begin[int](m)
	it.Next()
	require.Equal(t, Cell[int]{Pos: geom.Pt(1, 0), Value: 11}, it.Cell())
}

func TestIteratorEmptyDomain(t *testing.T) {
	m := NewRect[int](geom.Build(5, 5, 0, 3))
	require.True(t, Begin[int](m).Equal(End[int](m)))
	require.True(t, Begin[int](m).Done())

	n := 0
	for range All[int](m) {
		n++
	}
	for range Backward[int](m) {
		n++
	}
	require.Zero(t, n)
}

func TestRegionClipsToBounds(t *testing.T) {
	m := New[int](5, 5)
	var got []geom.Point
	for p := range Region[int](m, geom.Build(3, 3, 10, 10)) {
		got = append(got, p)
	}
	require.Equal(t, []geom.Point{geom.Pt(3, 3), geom.Pt(4, 3), geom.Pt(3, 4), geom.Pt(4, 4)}, got)
}

func TestBackward(t *testing.T) {
	m := New[int](3, 2)
	for i := range m.Cells() {
		m.Cells()[i] = i
	}
	var vals []int
	for _, v := range Backward[int](m) {
		vals = append(vals, v)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, vals)

	vals = vals[:0]
	for _, v := range All[int](m) {
		if v == 2 {
			break
		}
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1}, vals)
}

// rowGrid is a value-type Grid whose slice field makes it non-comparable.
type rowGrid struct {
	rect  geom.Rect
	cells []int
}

func (g rowGrid) Bounds() geom.Rect   { return g.rect }
func (g rowGrid) Valid() bool         { return g.cells != nil }
func (g rowGrid) At(x, y int) int     { return g.cells[g.rect.Index(geom.Pt(x, y))] }
func (g rowGrid) Set(x, y int, v int) { g.cells[g.rect.Index(geom.Pt(x, y))] = v }

func TestIteratorOverValueGrid(t *testing.T) {
	g := rowGrid{rect: geom.Sized(3, 2), cells: []int{0, 1, 2, 3, 4, 5}}

	var vals []int
	for _, v := range Backward[int](g) {
		vals = append(vals, v)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, vals)

	require.True(t, Begin[int](g).Equal(Begin[int](g)))
	it := Begin[int](g)
	for !it.Done() {
		it.Next()
	}
	require.True(t, it.Equal(End[int](g)))

	other := rowGrid{rect: g.rect, cells: []int{9, 9, 9, 9, 9, 9}}
	require.False(t, Begin[int](g).Equal(Begin[int](other)))
	require.False(t, Begin[int](g).Equal(Begin[int](New[int](3, 2))))
}
