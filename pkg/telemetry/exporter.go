package telemetry

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/junjiewwang/kclique/pkg/utils"
)

// LogSpanExporter implements trace.SpanExporter by formatting every
// completed span as one progress line through a pkg/utils.Logger, instead
// of shipping it to a collector over the network. It is the only exporter
// this package ships: a pipeline run never has anywhere to send traces but
// the logger it was given.
type LogSpanExporter struct {
	logger utils.Logger
}

// NewLogSpanExporter creates an exporter that writes through logger.
func NewLogSpanExporter(logger utils.Logger) *LogSpanExporter {
	return &LogSpanExporter{logger: logger}
}

// ExportSpans logs each completed span's name, duration, and attributes.
func (e *LogSpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		duration := span.EndTime().Sub(span.StartTime())
		fields := map[string]interface{}{
			"span":       span.Name(),
			"duration":   duration.String(),
			"span_id":    span.SpanContext().SpanID().String(),
			"trace_id":   span.SpanContext().TraceID().String(),
			"status":     span.Status().Code.String(),
		}
		for _, attr := range span.Attributes() {
			fields[string(attr.Key)] = attr.Value.AsInterface()
		}
		e.logger.WithFields(fields).Info(fmt.Sprintf("stage %s completed", span.Name()))
	}
	return nil
}

// Shutdown is a no-op: there is no network connection to tear down.
func (e *LogSpanExporter) Shutdown(_ context.Context) error {
	return nil
}

var _ sdktrace.SpanExporter = (*LogSpanExporter)(nil)
