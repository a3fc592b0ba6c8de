package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLoggerLevel(t *testing.T) {
	oldLogger := Logger
	t.Cleanup(func() { Logger = oldLogger })

	if err := InitLogger("warn"); err != nil {
		t.Fatalf("initializing logger: %v", err)
	}

	if Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("expected info level to be disabled")
	}
	if !Logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("expected warn level to be enabled")
	}
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	oldLogger := Logger
	t.Cleanup(func() { Logger = oldLogger })

	if err := InitLogger("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggerWithTraceAddsTraceFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	LoggerWithTrace(ctx).Info("traced")
	LoggerWithTrace(context.Background()).Info("untraced")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("expected trace_id %q, got %#v", traceID.String(), fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("expected span_id %q, got %#v", spanID.String(), fields["span_id"])
	}

	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Fatal("did not expect trace_id without an active span")
	}
}
