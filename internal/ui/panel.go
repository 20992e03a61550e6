package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gridkit/internal/core"
	"gridkit/pkg/grid"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

// layerTints colour overlay layers in the order the sim reports them.
var layerTints = []color.RGBA{
	{R: 64, G: 164, B: 223, A: 110},
	{R: 255, G: 120, B: 40, A: 110},
	{R: 120, G: 220, B: 90, A: 110},
	{R: 200, G: 90, B: 220, A: 110},
}

// LayerTint returns the overlay colour for layer i.
func LayerTint(i int) color.RGBA { return layerTints[i%len(layerTints)] }

type controlState struct {
	control  core.ParameterControl
	value    string
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// panel holds the input-independent state of the parameter HUD.
type panel struct {
	sim      any
	width    int
	title    string
	controls []controlState
}

func newPanel(sim core.Sim, width int) *panel {
	p := &panel{sim: sim, width: max(width, 0), title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, c := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: c, value: "--"})
		}
	}
	p.layout()
	return p
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func (p *panel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
}

// refresh reloads control values from the sim's parameter snapshot.
func (p *panel) refresh() {
	provider, ok := p.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	for i := range p.controls {
		s := &p.controls[i]
		v, ok := core.ControlValue(snap, s.control.Key)
		s.hasValue = ok
		if !ok {
			s.value = "--"
			continue
		}
		s.current = v
		s.value = formatValue(s.control, v)
	}
}

// click applies a press at panel-local coordinates (x, y).
func (p *panel) click(x, y int) bool {
	pt := image.Pt(x, y)
	for i := range p.controls {
		s := &p.controls[i]
		if !s.hasValue {
			continue
		}
		dir := 0
		switch {
		case pt.In(s.minusRect):
			dir = -1
		case pt.In(s.plusRect):
			dir = 1
		default:
			continue
		}
		v, ok := core.AdjustControl(p.sim, s.control, dir)
		if ok {
			s.current = v
			s.value = formatValue(s.control, v)
		}
		return ok
	}
	return false
}

func (p *panel) canAdjust(s *controlState, dir int) bool {
	if !s.hasValue {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if _, ok := p.sim.(core.IntParameterSetter); !ok {
			return false
		}
	case core.ParamTypeFloat:
		if _, ok := p.sim.(core.FloatParameterSetter); !ok {
			return false
		}
	default:
		return false
	}
	return core.StepControl(s.control, s.current, dir) != s.current
}

func formatValue(c core.ParameterControl, v float64) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	step := c.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// fillMaskRGBA writes tint, alpha-premultiplied, for set cells and
// transparent pixels elsewhere, in row-major order over the mask's bounds.
func fillMaskRGBA(buf []byte, mask grid.Grid[bool], tint color.RGBA) {
	a := uint16(tint.A)
	tint.R = uint8(uint16(tint.R) * a / 255)
	tint.G = uint8(uint16(tint.G) * a / 255)
	tint.B = uint8(uint16(tint.B) * a / 255)
	i := 0
	for _, on := range grid.All(mask) {
		if i+3 >= len(buf) {
			return
		}
		if on {
			buf[i], buf[i+1], buf[i+2], buf[i+3] = tint.R, tint.G, tint.B, tint.A
		} else {
			buf[i], buf[i+1], buf[i+2], buf[i+3] = 0, 0, 0, 0
		}
		i += 4
	}
}
