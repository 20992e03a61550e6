package grid

import (
	"log/slog"
	"math/bits"

	"gridkit/pkg/geom"
)

const (
	wordBits     = 64
	log2WordBits = 6
	allBits      = ^uint64(0)
)

// Bits is a boolean grid packed one bit per cell into 64-bit words. Bit i of
// the grid, counted in row-major order, lives in words[i/64] at position
// i%64. Bits past Area() are always zero.
type Bits struct {
	rect      geom.Rect
	words     []uint64
	unchecked bool
}

func wordCount(area int) int {
	return (area + wordBits - 1) >> log2WordBits
}

// NewBits allocates a cleared w*h bit grid anchored at the origin.
func NewBits(w, h int, opts ...Option) *Bits {
	return NewBitsRect(geom.Sized(w, h), opts...)
}

// NewBitsRect allocates a cleared bit grid covering r.
func NewBitsRect(r geom.Rect, opts ...Option) *Bits {
	o := buildOptions(opts)
	return &Bits{rect: r, words: make([]uint64, wordCount(r.Area())), unchecked: o.unchecked}
}

// BitsFrom packs any boolean grid.
func BitsFrom(g Grid[bool]) *Bits {
	if b, ok := g.(*Bits); ok {
		return b.Clone()
	}
	r := g.Bounds()
	b := NewBitsRect(r)
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			b.Set(x, y, g.At(x, y))
		}
	}
	return b
}

// Bounds returns the domain.
func (b *Bits) Bounds() geom.Rect { return b.rect }

// Valid reports whether storage has been allocated.
func (b *Bits) Valid() bool { return b.words != nil }

// Words exposes the packed storage.
func (b *Bits) Words() []uint64 { return b.words }

func (b *Bits) index(x, y int) int {
	if !b.unchecked && !b.rect.ContainsXY(x, y) {
		panic(&RangeError{X: x, Y: y, Bounds: b.rect})
	}
	return (x - b.rect.X1) + (y-b.rect.Y1)*b.rect.Width()
}

func b2u(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// At reports whether the bit at (x, y) is set.
func (b *Bits) At(x, y int) bool {
	i := b.index(x, y)
	return b.words[i>>log2WordBits]&(1<<(uint(i)&(wordBits-1))) != 0
}

// Set writes v at (x, y).
func (b *Bits) Set(x, y int, v bool) {
	i := b.index(x, y)
	w := i >> log2WordBits
	mask := uint64(1) << (uint(i) & (wordBits - 1))
	b.words[w] = (b.words[w] &^ mask) | (mask * b2u(v))
}

// Fill sets every bit to v one word at a time.
func (b *Bits) Fill(v bool) {
	pattern := allBits * b2u(v)
	for i := range b.words {
		b.words[i] = pattern
	}
	b.clearTail()
}

// Flip complements every bit in place.
func (b *Bits) Flip() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.clearTail()
}

// Count returns the number of set bits.
func (b *Bits) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone returns a deep copy.
func (b *Bits) Clone() *Bits {
	c := &Bits{rect: b.rect, unchecked: b.unchecked}
	if b.words != nil {
		c.words = make([]uint64, len(b.words))
		copy(c.words, b.words)
	}
	return c
}

// Assign replaces b's storage with a copy of src and adopts its domain and
// bounds-check option, as Clone does.
func (b *Bits) Assign(src *Bits) {
	if b == src {
		return
	}
	b.rect = src.rect
	b.unchecked = src.unchecked
	b.words = nil
	if src.words != nil {
		b.words = make([]uint64, len(src.words))
		copy(b.words, src.words)
	}
}

// Resize moves b onto r, keeping the bits of cells present in both domains
// and setting new cells to fill.
func (b *Bits) Resize(r geom.Rect, fill bool) {
	next := NewBitsRect(r, WithBoundsCheck(!b.unchecked))
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			v := fill
			if b.words != nil && b.rect.ContainsXY(x, y) {
				v = b.At(x, y)
			}
			next.Set(x, y, v)
		}
	}
	Logger().Debug("grid: bits resize",
		slog.String("from", b.rect.String()),
		slog.String("to", r.String()),
		slog.Int("words", len(next.words)))
	b.rect = r
	b.words = next.words
}

// Expand unpacks b into a Dense boolean grid.
func (b *Bits) Expand() *Dense[bool] {
	d := NewRect[bool](b.rect)
	for y := b.rect.Y1; y < b.rect.Y2; y++ {
		for x := b.rect.X1; x < b.rect.X2; x++ {
			d.Set(x, y, b.At(x, y))
		}
	}
	return d
}

// clearTail zeroes the padding bits of the last word.
func (b *Bits) clearTail() {
	if len(b.words) == 0 {
		return
	}
	if rem := uint(b.rect.Area()) & (wordBits - 1); rem != 0 {
		b.words[len(b.words)-1] &= (uint64(1) << rem) - 1
	}
}
