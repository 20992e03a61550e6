//go:build ebiten

package render

import (
	"image/color"

	"gridkit/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a grid of cell values.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells of g through palette and draws them scaled onto dst.
// Grids whose size differs from the painter's are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, g grid.Grid[uint8], palette []color.RGBA, scale int) {
	r := g.Bounds()
	if r.Width() != gp.w || r.Height() != gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, g, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// BlitBinary draws g in two colors: on for non-zero cells, off otherwise.
func (gp *GridPainter) BlitBinary(dst *ebiten.Image, g grid.Grid[uint8], on, off color.Color, scale int) {
	r := g.Bounds()
	if r.Width() != gp.w || r.Height() != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
