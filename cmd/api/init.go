package main

import (
	"context"
	"errors"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/config"
	"keypad-calc/internal/observability"
	"keypad-calc/internal/session"
)

// initTelemetry starts the OTLP trace, metric and log pipelines when enabled
// and registers the domain metric instruments either way. The returned
// function flushes and stops every pipeline that was started.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.TelemetryEnabled {
		for _, start := range []func(context.Context, string) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		} {
			stop, err := start(ctx, cfg.ServiceName)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, stop)
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	if err := session.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
