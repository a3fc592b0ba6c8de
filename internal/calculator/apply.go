package calculator

import (
	"context"
	"fmt"
	"time"

	"keypad-calc/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Apply is HandleLabel wrapped in a child span, with metrics and a
// trace-correlated log entry for the transition. InitMetrics must have been
// called before the first use.
func Apply(ctx context.Context, s State, label string) State {
	logger := observability.LoggerWithTrace(ctx)
	key := ParseKey(label)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.key.%s", key.Kind()),
		trace.WithAttributes(
			attribute.String("calculator.key", key.Label()),
			attribute.String("calculator.key.kind", key.Kind()),
			attribute.String("calculator.display.before", s.Display),
		),
	)
	defer span.End()

	start := time.Now()
	next := Handle(s, key)
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6 // ms

	attrs := metric.WithAttributes(attribute.String("kind", key.Kind()))
	keyCounter.Add(ctx, 1, attrs)
	keyHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(
		attribute.String("calculator.display", next.Display),
		attribute.String("calculator.expression", next.Expression),
	)

	if evaluates(s, key) {
		op := string(*s.Operation)
		if next.IsError() {
			evalCounter.Add(ctx, 1, metric.WithAttributes(
				attribute.String("operation", op),
				attribute.String("outcome", "error"),
			))
			span.AddEvent("calculation.undefined", trace.WithAttributes(
				attribute.Float64("operand.a", *s.PreviousValue),
				attribute.String("operand.b", s.Display),
				attribute.String("operation", op),
			))
			span.SetStatus(codes.Error, "undefined result")

			logger.Warn("calculation produced no number",
				zap.String("operation", op),
				zap.Float64("a", *s.PreviousValue),
				zap.String("b", s.Display),
			)
			return next
		}

		evalCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", "ok"),
		))
		if result, ok := parseOperand(next.Display); ok {
			resultGauge.Record(ctx, result, metric.WithAttributes(attribute.String("operation", op)))
			span.AddEvent("calculation.complete", trace.WithAttributes(
				attribute.Float64("result", result),
			))
		}
	}

	span.SetStatus(codes.Ok, "")

	logger.Info("key applied",
		zap.String("key", key.Label()),
		zap.String("kind", key.Kind()),
		zap.String("display", next.Display),
		zap.String("expression", next.Expression),
		zap.Float64("duration_ms", elapsed),
	)

	return next
}

// evaluates reports whether pressing k in state s resolves the pending
// operation, either through equals or by chaining another operator.
func evaluates(s State, k Key) bool {
	if !s.HasPending() || s.IsError() {
		return false
	}
	switch k.(type) {
	case Equals, OperatorKey:
		return true
	default:
		return false
	}
}
