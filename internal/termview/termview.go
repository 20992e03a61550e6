// Package termview draws a running simulation in a terminal with tcell.
package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridkit/internal/core"
	"gridkit/internal/render"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// frameInterval paces redraws, independent of the simulation tick rate.
const frameInterval = 16 * time.Millisecond

// Options configures a Viewer.
type Options struct {
	TPS    int
	Seed   int64
	Glyphs string
	Paused bool
}

// Viewer renders a core.Sim into a tcell screen, one cell per character.
// The last screen row holds a status line.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	timer  *core.FixedStep

	glyphs []rune
	styles []tcell.Style

	seed       int64
	paused     bool
	tickOnce   bool
	generation int

	offset   geom.Point
	controls []core.ParameterControl
	control  int
	message  string
}

// New builds a viewer. The screen must already be initialized.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Viewer {
	if opts.Glyphs == "" {
		opts.Glyphs = render.DefaultGlyphs
	}
	v := &Viewer{
		screen: screen,
		sim:    sim,
		timer:  core.NewFixedStep(opts.TPS),
		glyphs: []rune(opts.Glyphs),
		seed:   opts.Seed,
		paused: opts.Paused,
	}
	for _, c := range render.PaletteFor(sim) {
		v.styles = append(v.styles, tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Background(tcell.ColorBlack))
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		v.controls = p.ParameterControls()
	}
	return v
}

// Generation reports how many steps ran since the last reset.
func (v *Viewer) Generation() int { return v.generation }

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Viewport returns the part of the simulation currently on screen.
func (v *Viewer) Viewport() geom.Rect {
	sw, sh := v.screen.Size()
	b := v.sim.Bounds()
	return geom.Intersect(b, geom.Build(b.X1+v.offset.X, b.Y1+v.offset.Y, sw, max(sh-1, 0)))
}

// Reset reseeds the simulation.
func (v *Viewer) Reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.generation = 0
	v.tickOnce = false
}

// Tick advances the simulation when it is running and the step timer fires,
// or once after a single-step request.
func (v *Viewer) Tick() bool {
	if v.tickOnce || (!v.paused && v.timer.ShouldStep()) {
		v.sim.Step()
		v.generation++
		v.tickOnce = false
		return true
	}
	return false
}

// Draw paints the visible part of the simulation and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	vp := v.Viewport()
	view := grid.NewView(v.sim.Cells(), vp)
	for p, c := range grid.All[uint8](view) {
		v.screen.SetContent(p.X-vp.X1, p.Y-vp.Y1, render.Glyph(v.glyphs, c), nil, v.style(c))
	}
	_, sh := v.screen.Size()
	if sh > 0 {
		v.drawText(0, sh-1, v.status(), tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scroll(0, -1)
		case tcell.KeyDown:
			v.scroll(0, 1)
		case tcell.KeyLeft:
			v.scroll(-1, 0)
		case tcell.KeyRight:
			v.scroll(1, 0)
		case tcell.KeyTab:
			if len(v.controls) > 0 {
				v.control = (v.control + 1) % len(v.controls)
			}
		case tcell.KeyEnter:
			v.paused = false
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.tickOnce = true
	case 'r':
		v.Reset(v.seed)
	case 's':
		v.Reset(time.Now().UnixNano())
	case '+', '=':
		v.adjust(1)
	case '-':
		v.adjust(-1)
	case ']':
		v.timer.SetTPS(v.timer.TPS() * 2)
	case '[':
		v.timer.SetTPS(max(v.timer.TPS()/2, 1))
	}
	return true
}

// Run polls input and redraws until ctx is done or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if v.Tick() {
				v.Draw()
			}
		}
	}
}

func (v *Viewer) scroll(dx, dy int) {
	b := v.sim.Bounds()
	sw, sh := v.screen.Size()
	maxX := max(b.Width()-sw, 0)
	maxY := max(b.Height()-(sh-1), 0)
	v.offset.X = min(max(v.offset.X+dx, 0), maxX)
	v.offset.Y = min(max(v.offset.Y+dy, 0), maxY)
}

func (v *Viewer) adjust(dir int) {
	if len(v.controls) == 0 {
		return
	}
	c := v.controls[v.control]
	next, ok := core.AdjustControl(v.sim, c, dir)
	if !ok {
		v.message = fmt.Sprintf("%s unchanged", c.Label)
		return
	}
	v.message = fmt.Sprintf("%s = %g", c.Label, next)
}

func (v *Viewer) status() string {
	state := "running"
	if v.paused {
		state = "paused"
	}
	s := fmt.Sprintf(" %s  gen %d  %s  %d tps", v.sim.Name(), v.generation, state, v.timer.TPS())
	if len(v.controls) > 0 {
		s += fmt.Sprintf("  [%s]", v.controls[v.control].Label)
	}
	if v.message != "" {
		s += "  " + v.message
	}
	return s + "  (space pause, n step, r reset, q quit)"
}

func (v *Viewer) style(c uint8) tcell.Style {
	if len(v.styles) == 0 {
		return tcell.StyleDefault
	}
	return v.styles[min(int(c), len(v.styles)-1)]
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	sw, _ := v.screen.Size()
	for _, r := range s {
		if x >= sw {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < sw; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
