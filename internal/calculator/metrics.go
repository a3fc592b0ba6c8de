package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	keyCounter     metric.Int64Counter
	keyHistogram   metric.Float64Histogram
	evalCounter    metric.Int64Counter
	errorCounter   metric.Int64Counter
	resultGauge    metric.Float64Gauge
	sequenceLength metric.Int64Histogram
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	keyCounter, err = meter.Int64Counter("calculator.keys.total",
		metric.WithDescription("Total number of key presses applied to a calculator state"),
		metric.WithUnit("{key}"),
	)
	if err != nil {
		return fmt.Errorf("creating key counter: %w", err)
	}

	keyHistogram, err = meter.Float64Histogram("calculator.key.duration",
		metric.WithDescription("Duration of a single state transition in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return fmt.Errorf("creating key histogram: %w", err)
	}

	evalCounter, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Pending operations resolved by equals or chaining, by outcome"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last successful evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	sequenceLength, err = meter.Int64Histogram("calculator.sequence.length",
		metric.WithDescription("Number of keys submitted in one sequence request"),
		metric.WithUnit("{key}"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100),
	)
	if err != nil {
		return fmt.Errorf("creating sequence histogram: %w", err)
	}

	return nil
}
