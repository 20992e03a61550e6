//go:build ebiten

package app

import (
	"time"

	"gridkit/internal/core"
	"gridkit/internal/render"
	"gridkit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	panel    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	cfg.Normalize()
	b := sim.Bounds()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(b.Width(), b.Height()),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.Panel),
		scale:   cfg.Scale,
		panel:   cfg.Panel,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.PaletteFor(g.sim), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.panel, g.sim.Bounds().Height() * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Bounds().Width() * g.scale }
