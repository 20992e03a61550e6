package core

import (
	"errors"
	"fmt"
	"sort"

	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// ErrUnknownSim is returned by New for names that were never registered.
var ErrUnknownSim = errors.New("core: unknown simulation")

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Bounds() geom.Rect
	Reset(seed int64)
	Step()
	// Cells returns the display grid. Values index a palette; 0 is empty.
	Cells() grid.Grid[uint8]
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named simulation.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSim, name)
	}
	return f(cfg), nil
}
