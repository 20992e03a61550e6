package app

import (
	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Panel int
	Set   map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, Panel: 240, Set: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the parameter panel in pixels, 0 hides it")
	fs.StringToStringVar(&c.Set, "set", c.Set, "simulation parameters as key=value pairs")
}

// Normalize replaces out-of-range values with usable ones.
func (c *Config) Normalize() {
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.TPS < 1 {
		c.TPS = 60
	}
	if c.Panel < 0 {
		c.Panel = 0
	}
}
