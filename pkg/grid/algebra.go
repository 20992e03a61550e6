package grid

import (
	"log/slog"
)

// And returns a AND b over the intersection of their domains.
func And(a, b Grid[bool]) *Bits {
	return combine(a, b, "and",
		func(x, y uint64) uint64 { return x & y },
		func(x, y bool) bool { return x && y })
}

// Or returns a OR b over the intersection of their domains.
func Or(a, b Grid[bool]) *Bits {
	return combine(a, b, "or",
		func(x, y uint64) uint64 { return x | y },
		func(x, y bool) bool { return x || y })
}

// Xor returns a XOR b over the intersection of their domains.
func Xor(a, b Grid[bool]) *Bits {
	return combine(a, b, "xor",
		func(x, y uint64) uint64 { return x ^ y },
		func(x, y bool) bool { return x != y })
}

// Not returns the complement of a over its own domain.
func Not(a Grid[bool]) *Bits {
	if ab, ok := a.(*Bits); ok {
		out := ab.Clone()
		out.Flip()
		return out
	}
	r := a.Bounds()
	out := NewBitsRect(r)
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			out.Set(x, y, !a.At(x, y))
		}
	}
	return out
}

// combine runs word-wise when both operands are *Bits over the same domain,
// otherwise cell by cell over the overlap.
func combine(a, b Grid[bool], op string, words func(x, y uint64) uint64, cells func(x, y bool) bool) *Bits {
	ab, aok := a.(*Bits)
	bb, bok := b.(*Bits)
	if aok && bok && ab.rect == bb.rect {
		out := NewBitsRect(ab.rect)
		for i := range out.words {
			out.words[i] = words(ab.words[i], bb.words[i])
		}
		out.clearTail()
		Logger().Debug("grid: bit algebra", slog.String("op", op), slog.String("path", "word"),
			slog.Int("words", len(out.words)))
		return out
	}

	r := clip(a.Bounds(), b.Bounds())
	out := NewBitsRect(r)
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			out.Set(x, y, cells(a.At(x, y), b.At(x, y)))
		}
	}
	Logger().Debug("grid: bit algebra", slog.String("op", op), slog.String("path", "cell"),
		slog.Int("cells", r.Area()))
	return out
}
