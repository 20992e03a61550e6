package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form values such as a boundary policy.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Map flattens the snapshot into the key/value form accepted by a Factory.
func (s ParameterSnapshot) Map() map[string]string {
	out := make(map[string]string)
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out[p.Key] = p.Value
		}
	}
	return out
}

// ParameterProvider is implemented by sims that report their configuration.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes a parameter that can be adjusted while the sim
// runs. Steps and bounds are optional and interpreted based on the parameter
// type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of live-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows viewers to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows viewers to update floating point parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// Int64Param builds an integer Parameter from an int64.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating point Parameter.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// BoolParam builds a boolean Parameter.
func BoolParam(key, label string, v bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(v)}
}

// StringParam builds a free-form Parameter.
func StringParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: v}
}
