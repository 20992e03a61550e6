package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridkit/pkg/geom"
)

func TestFillRoundTrip(t *testing.T) {
	r := geom.Build(-3, 4, 7, 5)
	base := NewRect[int](geom.Build(-10, -10, 30, 30))
	type record struct {
		A int
		B string
	}
	records := NewRect[record](r)

	grids := map[string]Grid[int]{
		"dense":      NewRect[int](r),
		"unchecked":  NewRect[int](r, WithBoundsCheck(false)),
		"view":       NewView[int](base, r),
		"projection": Project(records, func(rec record) int { return rec.A }, func(rec *record, v int) { rec.A = v }),
	}
	for name, g := range grids {
		t.Run(name, func(t *testing.T) {
			Fill(g, 42)
			for p, v := range All(g) {
				require.Equal(t, 42, v, "cell %v", p)
			}
		})
	}

	t.Run("bits", func(t *testing.T) {
		for _, v := range []bool{true, false, true} {
			b := NewBitsRect(r)
			Fill[bool](b, v)
			for p, got := range All[bool](b) {
				require.Equal(t, v, got, "cell %v", p)
			}
		}
	})
}

func TestDenseOutOfRange(t *testing.T) {
	d := NewRectFilled(geom.Rt(0, 0, 2, 2), '.')

	require.PanicsWithError(t, (&RangeError{X: 2, Y: 0, Bounds: d.Bounds()}).Error(), func() {
		d.At(2, 0)
	})
	require.Panics(t, func() { d.Set(-1, 0, 'x') })

	_, err := Lookup[rune](d, 2, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 2, rerr.X)
	assert.Equal(t, 0, rerr.Y)

	require.ErrorIs(t, Store[rune](d, 5, 5, 'x'), ErrOutOfRange)
	require.NoError(t, Store[rune](d, 1, 1, 'x'))
	v, err := Lookup[rune](d, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 'x', v)
}

func TestDenseUncheckedAliases(t *testing.T) {
	d := New[int](3, 3, WithBoundsCheck(false))
	d.Set(3, 0, 7)
	require.Equal(t, 7, d.At(0, 1))
}

func TestDenseAssignAdoptsBoundsCheck(t *testing.T) {
	dst := New[int](2, 2)
	dst.Assign(New[int](3, 3, WithBoundsCheck(false)))
	dst.Set(3, 0, 7)
	require.Equal(t, 7, dst.At(0, 1))

	checked := New[int](3, 3, WithBoundsCheck(false))
	checked.Assign(New[int](3, 3))
	require.Panics(t, func() { checked.Set(3, 0, 7) })
}

func TestDenseZeroValue(t *testing.T) {
	var d Dense[int]
	require.False(t, d.Valid())
	require.True(t, d.Bounds().Empty())
	require.Panics(t, func() { d.At(0, 0) })

	n := 0
	for range All[int](&d) {
		n++
	}
	require.Zero(t, n)
}

func TestDenseConstructors(t *testing.T) {
	d := NewFilled(4, 3, "x")
	require.True(t, d.Valid())
	require.Equal(t, geom.Sized(4, 3), d.Bounds())
	require.Len(t, d.Cells(), 12)
	for _, v := range d.Cells() {
		require.Equal(t, "x", v)
	}

	r := geom.Build(20, 20, 80, 80)
	m := NewRectFilled(r, '-')
	m.Set(25, 30, 'X')
	require.Equal(t, 'X', m.At(25, 30))
	require.Equal(t, 'X', AtPoint[rune](m, geom.Pt(25, 30)))
	require.Equal(t, 5+10*80, m.Index(25, 30))
}

func TestDenseCloneIsDeep(t *testing.T) {
	d := NewFilled(10, 10, '.')
	c := d.Clone()
	require.Equal(t, d.At(5, 5), c.At(5, 5))

	c.Set(5, 5, '#')
	require.NotEqual(t, d.At(5, 5), c.At(5, 5))
}

func TestDenseAssign(t *testing.T) {
	src := NewRectFilled(geom.Build(5, 5, 2, 2), 9)
	dst := NewFilled(10, 10, 1)
	dst.Assign(src)

	require.Equal(t, src.Bounds(), dst.Bounds())
	require.Equal(t, 9, dst.At(6, 6))

	src.Set(6, 6, 0)
	require.Equal(t, 9, dst.At(6, 6))
	dst.Assign(dst)
	require.Equal(t, 9, dst.At(6, 6))
}

func TestDenseResizePreservesOverlap(t *testing.T) {
	d := New[int](10, 10)
	for i := range d.Cells() {
		d.Cells()[i] = i
	}
	d.Resize(geom.Build(2, 2, 10, 10), -1)

	require.Equal(t, geom.Build(2, 2, 10, 10), d.Bounds())
	for p, v := range All[int](d) {
		if p.X <= 9 && p.Y <= 9 {
			require.Equal(t, p.X+p.Y*10, v, "overlap cell %v", p)
			continue
		}
		require.Equal(t, -1, v, "new cell %v", p)
	}
}

func TestDensePtrMutatesInPlace(t *testing.T) {
	d := New[[2]int](3, 3)
	d.Ptr(1, 2)[1] = 5
	require.Equal(t, [2]int{0, 5}, d.At(1, 2))
}

func TestFillFuncRowMajor(t *testing.T) {
	d := NewRect[int](geom.Build(1, 1, 3, 2))
	n := 0
	FillFunc[int](d, func() int { n++; return n })
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, d.Cells())

	v := NewView[int](d, geom.Build(2, 1, 2, 2))
	FillFunc[int](v, func() int { return 0 })
	require.Equal(t, []int{1, 0, 0, 4, 0, 0}, d.Cells())
}

func TestFillRectClipsToDomain(t *testing.T) {
	d := NewFilled(4, 4, 0)
	FillRect[int](d, geom.Build(2, 2, 10, 10), 1)
	ones := 0
	for _, v := range d.Cells() {
		ones += v
	}
	require.Equal(t, 4, ones)
}

func TestMirrors(t *testing.T) {
	edge := 19
	m := NewFilled(edge+1, edge+1, '?')

	m.Set(0, 0, 'A')
	FlipX[rune](m)
	require.Equal(t, 'A', m.At(edge, 0))

	m.Set(0, 0, 'B')
	FlipY[rune](m)
	require.Equal(t, 'B', m.At(0, edge))

	m.Set(0, 0, 'C')
	Reverse[rune](m)
	require.Equal(t, 'C', m.At(edge, edge))

	odd := New[int](3, 3)
	for i := range odd.Cells() {
		odd.Cells()[i] = i
	}
	Reverse[int](odd)
	require.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}, odd.Cells())
}

func TestSwap(t *testing.T) {
	m := NewFilled(100, 100, '.')
	a, b := geom.Pt(85, 12), geom.Pt(10, 36)
	SetPoint[rune](m, a, 'A')
	SetPoint[rune](m, b, 'b')

	Swap[rune](m, a, b)
	require.Equal(t, 'A', AtPoint[rune](m, b))
	require.Equal(t, 'b', AtPoint[rune](m, a))
	require.Equal(t, Cell[rune]{Pos: a, Value: 'b'}, CellAt[rune](m, a))
}
