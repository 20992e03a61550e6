//go:build ebiten

package ui

import (
	"gridkit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var layerKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Overlay tints the masks a sim exposes through core.LayerProvider on top of
// the base view. Digit keys toggle layers by position.
type Overlay struct {
	sim   core.Sim
	scale int
	shown [9]bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// Update toggles layers on digit key presses.
func (o *Overlay) Update() {
	for i, k := range layerKeys {
		if inpututil.IsKeyJustPressed(k) {
			o.shown[i] = !o.shown[i]
		}
	}
}

// Draw renders every visible layer onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(core.LayerProvider)
	if !ok {
		return
	}
	for i, layer := range provider.Layers() {
		if i >= len(o.shown) || !o.shown[i] || layer.Mask == nil {
			continue
		}
		o.drawMask(screen, layer, i)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, layer core.Layer, i int) {
	r := layer.Mask.Bounds()
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != w || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(w, h)
		o.buf = make([]byte, 4*w*h)
	}
	fillMaskRGBA(o.buf, layer.Mask, LayerTint(i))
	o.img.WritePixels(o.buf)

	b := o.sim.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X1-b.X1), float64(r.Y1-b.Y1))
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
