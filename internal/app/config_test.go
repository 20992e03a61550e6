package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("ca", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(nil))
	require.Equal(t, "life", cfg.Sim)
	require.Equal(t, 3, cfg.Scale)
	require.Equal(t, int64(42), cfg.Seed)
	require.Empty(t, cfg.Set)
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("ca", pflag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"--sim", "cave", "--scale=5", "--tps", "20", "--seed", "-7",
		"--set", "w=64,h=48", "--set", "fill=0.5"})
	require.NoError(t, err)
	require.Equal(t, "cave", cfg.Sim)
	require.Equal(t, 5, cfg.Scale)
	require.Equal(t, 20, cfg.TPS)
	require.Equal(t, int64(-7), cfg.Seed)
	require.Equal(t, map[string]string{"w": "64", "h": "48", "fill": "0.5"}, cfg.Set)

	require.Error(t, fs.Parse([]string{"--scale", "big"}))
}

func TestConfigNormalize(t *testing.T) {
	cfg := &Config{Scale: 0, TPS: -1, Panel: -5}
	cfg.Normalize()
	require.Equal(t, 1, cfg.Scale)
	require.Equal(t, 60, cfg.TPS)
	require.Zero(t, cfg.Panel)
}
