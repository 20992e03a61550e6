package core

import (
	"math"
	"strconv"

	"gridkit/pkg/grid"
)

// Layer is a named boolean overlay a sim can expose for debugging views.
type Layer struct {
	Name string
	Mask grid.Grid[bool]
}

// LayerProvider is implemented by sims that expose overlay masks.
type LayerProvider interface {
	Layers() []Layer
}

// ControlValue looks up the numeric value of key in a snapshot.
func ControlValue(snap ParameterSnapshot, key string) (float64, bool) {
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			return v, err == nil
		}
	}
	return 0, false
}

// StepControl computes the value one step from current in direction dir,
// clamped to the control's bounds. Integer controls step by at least 1;
// float controls default to 0.05.
func StepControl(c ParameterControl, current float64, dir int) float64 {
	step := c.Step
	switch c.Type {
	case ParamTypeInt:
		step = math.Max(math.Round(step), 1)
	default:
		if step <= 0 {
			step = 0.05
		}
	}
	return c.Clamp(current + float64(dir)*step)
}

// AdjustControl steps control c of sim in direction dir and reports the new
// value. It returns false when the sim has no current value for the control,
// the value would not change, or the sim rejected it.
func AdjustControl(sim any, c ParameterControl, dir int) (float64, bool) {
	p, ok := sim.(ParameterProvider)
	if !ok {
		return 0, false
	}
	current, ok := ControlValue(p.Parameters(), c.Key)
	if !ok {
		return 0, false
	}
	next := StepControl(c, current, dir)
	if math.Abs(next-current) < 1e-9 {
		return current, false
	}
	switch c.Type {
	case ParamTypeInt:
		if s, is := sim.(IntParameterSetter); is && s.SetIntParameter(c.Key, int(math.Round(next))) {
			return math.Round(next), true
		}
	case ParamTypeFloat:
		if s, is := sim.(FloatParameterSetter); is && s.SetFloatParameter(c.Key, next) {
			return next, true
		}
	}
	return current, false
}
