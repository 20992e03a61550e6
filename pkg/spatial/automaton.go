package spatial

import (
	"log/slog"

	"gridkit/pkg/grid"
)

// Rule decides the next state of a cell from its current state and the
// number of set cells among its eight neighbours.
type Rule func(alive bool, neighbors int) bool

// Threshold returns the rule that sets a cell when at least birth of its
// neighbours are set, whatever its current state.
func Threshold(birth int) Rule {
	return func(_ bool, n int) bool { return n >= birth }
}

// LifeLike returns the outer-totalistic rule with the given birth and
// survival counts, e.g. LifeLike([]int{3}, []int{2, 3}) for Conway's Life.
func LifeLike(birth, survive []int) Rule {
	var b, s [9]bool
	for _, n := range birth {
		if n >= 0 && n < len(b) {
			b[n] = true
		}
	}
	for _, n := range survive {
		if n >= 0 && n < len(s) {
			s[n] = true
		}
	}
	return func(alive bool, n int) bool {
		if alive {
			return s[n]
		}
		return b[n]
	}
}

// Evolve advances mask by one generation under rule. The neighbour counts of
// every cell are gathered first and applied in a second pass, so the result
// does not depend on traversal order.
func Evolve(mask grid.Grid[bool], b Boundary, rule Rule) {
	r := mask.Bounds()
	counts := grid.NewRect[int](r)
	for p := range r.Points() {
		counts.Set(p.X, p.Y, CountNeighbors(mask, p, b))
	}
	live := 0
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			v := rule(mask.At(x, y), counts.At(x, y))
			mask.Set(x, y, v)
			if v {
				live++
			}
		}
	}
	grid.Logger().Debug("spatial: automaton step",
		slog.String("bounds", r.String()),
		slog.String("boundary", b.String()),
		slog.Int("live", live))
}

// Automaton runs one threshold step over mask: a cell is set when at least
// birth of its eight neighbours were set.
func Automaton(mask grid.Grid[bool], birth int, b Boundary) {
	Evolve(mask, b, Threshold(birth))
}
