package session

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	activeSessions  metric.Int64UpDownCounter
	evictedSessions metric.Int64Counter
	errorCounter    metric.Int64Counter
)

// InitMetrics registers the session metric instruments.
func InitMetrics() error {
	meter := otel.Meter("session")

	var err error

	activeSessions, err = meter.Int64UpDownCounter("sessions.active",
		metric.WithDescription("Number of calculator sessions currently stored"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return fmt.Errorf("creating active sessions counter: %w", err)
	}

	evictedSessions, err = meter.Int64Counter("sessions.evicted.total",
		metric.WithDescription("Sessions dropped after exceeding their idle TTL"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return fmt.Errorf("creating evicted sessions counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("sessions.errors.total",
		metric.WithDescription("Total number of rejected session requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating session error counter: %w", err)
	}

	return nil
}
