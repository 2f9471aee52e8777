package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/entitystore/internal/core/models"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"fatal":   LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), LevelInfo)

	l.Debug("hidden")
	l.Info("shown", Entity(models.EntityID(7)), Kind("location"))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	require.Equal(t, "shown", entry.Message)
	require.Equal(t, map[string]any{"entity": uint64(7), "kind": "location"}, entry.ContextMap())

	l.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("now visible")
	require.Equal(t, 2, logs.Len())
}

func TestLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), LevelDebug).With(String("component", "store"))

	l.Warn("rejected", Error(errors.New("boom")), Strings("props", []string{"a", "b"}))

	entry := logs.All()[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)
	ctx := entry.ContextMap()
	require.Equal(t, "store", ctx["component"])
	require.Equal(t, "boom", ctx["error"])
	require.Equal(t, []any{"a", "b"}, ctx["props"])
}

func TestNopAndNew(t *testing.T) {
	nop := NewNop()
	nop.Error("dropped")
	require.Equal(t, LevelFatal, nop.GetLevel())

	l := New(LevelWarn)
	require.Equal(t, LevelWarn, l.GetLevel())
	l.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug, l.GetLevel())
}
