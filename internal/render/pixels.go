package render

import (
	"image"
	"image/color"

	"gridkit/pkg/grid"
)

// BinaryPalette draws non-zero cells white on black.
var BinaryPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Paletted is implemented by sims that color their own cell values.
type Paletted interface {
	Palette() []color.RGBA
}

// PaletteFor returns v's palette, or BinaryPalette when it has none.
func PaletteFor(v any) []color.RGBA {
	if p, ok := v.(Paletted); ok && len(p.Palette()) > 0 {
		return p.Palette()
	}
	return BinaryPalette
}

// fillBinaryRGBA converts cell data into RGBA pixels in buf: non-zero cells
// take on, zero cells take off.
func fillBinaryRGBA(buf []byte, g grid.Grid[uint8], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for _, c := range grid.All(g) {
		base := i * 4
		i++
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, g grid.Grid[uint8], palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:g.Bounds().Area()*4])
		return
	}

	last := len(palette) - 1
	i := 0
	for _, c := range grid.All(g) {
		idx := min(int(c), last)
		base := i * 4
		i++
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders g through palette into a new image, one pixel per cell, scaled
// up by scale. The image origin is the grid's first cell.
func Image(g grid.Grid[uint8], palette []color.RGBA, scale int) *image.RGBA {
	scale = max(scale, 1)
	r := g.Bounds()
	w, h := r.Width(), r.Height()
	buf := make([]byte, w*h*4)
	fillPaletteRGBA(buf, g, palette)
	if scale == 1 {
		return &image.RGBA{Pix: buf, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			src := ((y/scale)*w + x/scale) * 4
			copy(img.Pix[img.PixOffset(x, y):], buf[src:src+4])
		}
	}
	return img
}
