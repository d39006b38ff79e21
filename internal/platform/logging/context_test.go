package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedContext(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return WithLogger(context.Background(), zap.New(core)), recorded
}

func TestLogHelpersUseContextLogger(t *testing.T) {
	ctx, recorded := observedContext(zapcore.InfoLevel)

	LogInfo(ctx, "info", zap.String("k", "v"))
	LogWarn(ctx, "warn")
	LogError(ctx, "error", errors.New("boom"))
	LogError(ctx, "error without cause", nil)

	entries := recorded.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["k"] != "v" {
		t.Fatalf("unexpected info entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %v", entries[1].Level)
	}
	if got := entries[2].ContextMap()["error"]; got != "boom" {
		t.Fatalf("expected error field 'boom', got %v", got)
	}
	if _, ok := entries[3].ContextMap()["error"]; ok {
		t.Fatal("did not expect error field for nil error")
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	//nolint:staticcheck // nil context is handled deliberately
	if LoggerFromContext(nil) != Logger() {
		t.Fatal("expected global logger for nil context")
	}
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected global logger for empty context")
	}
	var nilLogger *zap.Logger
	ctx := context.WithValue(context.Background(), ctxLoggerKey{}, nilLogger)
	if LoggerFromContext(ctx) != Logger() {
		t.Fatal("expected global logger when stored logger is nil")
	}
}

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace ID, got %q", got)
	}
	ctx := withTraceID(context.Background(), "req-1")
	if got := TraceIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected 'req-1', got %q", got)
	}
	if withTraceID(ctx, "") != ctx {
		t.Fatal("expected empty trace ID to leave context unchanged")
	}
}
