package render

import (
	"strings"

	"gridkit/pkg/grid"
)

// DefaultGlyphs renders 0 as a dot and 1 as a hash.
const DefaultGlyphs = ".#"

// Glyph picks the rune for cell value v. Values past the end of glyphs use
// its last rune; an empty glyph set renders spaces.
func Glyph(glyphs []rune, v uint8) rune {
	if len(glyphs) == 0 {
		return ' '
	}
	return glyphs[min(int(v), len(glyphs)-1)]
}

// Text renders g one line per row, each cell drawn with Glyph.
func Text(g grid.Grid[uint8], glyphs string) string {
	set := []rune(glyphs)
	r := g.Bounds()
	var sb strings.Builder
	sb.Grow(r.Area() + r.Height())
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			sb.WriteRune(Glyph(set, g.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
