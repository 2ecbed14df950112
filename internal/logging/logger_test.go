package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := Logger
	t.Cleanup(func() {
		SetGlobalLogger(original)
	})

	buf := &bytes.Buffer{}
	SetGlobalLogger(zerolog.New(buf).Level(zerolog.TraceLevel))
	return buf
}

func TestDefaultLoggerDiscards(t *testing.T) {
	require.Equal(t, zerolog.Disabled, zerolog.Nop().GetLevel())
	require.NotPanics(t, func() {
		Info().Msg("dropped")
	})
}

func TestSetGlobalLogger(t *testing.T) {
	buf := captureGlobal(t)

	Info().Str("key", "value").Msg("hello")
	require.Contains(t, buf.String(), `"key":"value"`)
	require.Contains(t, buf.String(), `"message":"hello"`)
}

func TestComponent(t *testing.T) {
	buf := captureGlobal(t)

	logger := Component("grid")
	logger.Debug().Msg("allocated")
	require.Contains(t, buf.String(), `"component":"grid"`)
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	buf := captureGlobal(t)

	Ctx(context.Background()).Warn().Msg("from context")
	require.Contains(t, buf.String(), "from context")
}
