package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("before initialize")
		ErrorCtx(context.Background(), nil)
	})
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(Config{Debug: false}))
	assert.False(t, Default().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Default().Core().Enabled(zapcore.InfoLevel))
}

func TestErrorWritesErrorMessage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	Error(errors.New("boom"), zap.String("contract", "0xabc"))
	ErrorCtx(context.Background(), nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[0].Message)
	assert.Equal(t, "0xabc", entries[0].ContextMap()["contract"])
	assert.Equal(t, "error occurred", entries[1].Message)
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	ctx := WithFields(context.Background(), zap.String("request_id", "req-1"))
	ctx = WithFields(ctx, zap.String("attempt_id", "att-1"))
	assert.Equal(t, ctx, WithFields(ctx))

	InfoCtx(ctx, "vote state changed", zap.String("state", "submitted"))
	WarnCtx(context.Background(), "no fields")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "att-1", fields["attempt_id"])
	assert.Equal(t, "submitted", fields["state"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}
