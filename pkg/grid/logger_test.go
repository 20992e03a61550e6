package grid

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"gridkit/pkg/geom"
)

func TestLoggerSilentByDefault(t *testing.T) {
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	d := New[int](2, 2)
	d.Resize(geom.Sized(3, 3), 0)
	require.Contains(t, buf.String(), "dense resize")
	require.Contains(t, buf.String(), "cells=9")

	buf.Reset()
	And(NewBits(2, 2), NewBits(2, 2))
	require.Contains(t, buf.String(), "path=word")

	SetLogger(nil)
	buf.Reset()
	d.Resize(geom.Sized(1, 1), 0)
	require.Empty(t, buf.String())
}
