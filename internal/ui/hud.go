//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gridkit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	*panel
	sim        core.Sim
	img        *ebiten.Image
	lastHeight int
	offsetX    int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for sim with a panel of the given width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{panel: newPanel(sim, width), sim: sim}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes control values and applies clicks on the +/- buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= offsetX {
		h.click(mx-offsetX, my)
	}
}

// Draw paints the panel at offsetX, as tall as the scaled simulation.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Bounds().Height() * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.img == nil || h.lastHeight != height {
		h.img = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.img, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.img, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		s := &h.controls[i]
		y := s.top + labelBaseline
		text.Draw(h.img, s.control.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !s.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		w := text.BoundString(face, s.value).Dx()
		text.Draw(h.img, s.value, face, s.minusRect.Min.X-buttonGap-w, y, valueColor)

		h.drawButton(s.minusRect, "-", h.canAdjust(s, -1))
		h.drawButton(s.plusRect, "+", h.canAdjust(s, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255, float64(bg.A)/255)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
