package observability_test

import (
	"testing"

	"github.com/CC-Digital-Innovation/go-prtg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := observability.NewZapLogger(zap.New(core))

	logger.Debug("debug msg", observability.Field{Key: "k", Value: "v"})
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug msg", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLoggerFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := observability.NewZapLogger(zap.New(core))

	logger.Info("request",
		observability.Field{Key: "method", Value: "GET"},
		observability.Field{Key: "status", Value: 200},
	)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestZapLoggerWith(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := observability.NewZapLogger(zap.New(core))

	child := logger.With(observability.Field{Key: "component", Value: "transport"})
	child.Info("attached fields")

	// Parent logger is unaffected by With on the child.
	logger.Info("no attached fields")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "transport", entries[0].ContextMap()["component"])
	assert.NotContains(t, entries[1].ContextMap(), "component")
}
