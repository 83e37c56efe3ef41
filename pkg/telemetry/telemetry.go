// Package telemetry wires per-stage span instrumentation for the kclique
// pipeline. Every run is local: spans describe S1-S6 stage boundaries and
// are exported by writing through pkg/utils.Logger, never over a network.
//
// Usage:
//
//	func main() {
//	    ctx := context.Background()
//	    shutdown, err := telemetry.Init(ctx, cfg, logger)
//	    if err != nil {
//	        logger.Warn("telemetry disabled: %v", err)
//	    }
//	    defer shutdown(ctx)
//
//	    ctx, span := otel.Tracer("kclique").Start(ctx, "truss-filter")
//	    defer span.End()
//	}
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/junjiewwang/kclique/pkg/utils"
)

// ShutdownFunc is a function that shuts down the TracerProvider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error {
	return nil
}

// Init initializes OpenTelemetry span instrumentation and sets up the
// global TracerProvider. If cfg.Enabled is false, it returns a no-op
// shutdown function and the global TracerProvider remains the default
// no-op provider: calling code can always call otel.Tracer(...) safely.
func Init(ctx context.Context, cfg *Config, logger utils.Logger) (ShutdownFunc, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	res, err := buildResource(ctx, cfg)
	if err != nil {
		return noopShutdown, err
	}

	exporter := NewLogSpanExporter(logger)
	sampler := createSampler(cfg)

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
		trace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		return tp.Shutdown(ctx)
	}, nil
}
