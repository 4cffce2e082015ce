package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	log, err := New("warn")
	require.NoError(t, err)
	require.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
	require.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud")
	require.ErrorContains(t, err, "parse log level")
}
