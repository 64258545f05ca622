// Package spancapture provides an in-memory OpenTelemetry span
// exporter whose captured spans can be inspected as tagged instruments.
//
// Wiring the exporter with a synchronous span processor makes every
// finished span immediately available for assertions:
//
//	exporter := spancapture.NewExporter()
//	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
//
//	_, span := provider.Tracer("svc").Start(ctx, "fetch")
//	span.SetAttributes(attribute.String("uri", "/a"))
//	span.End()
//
//	instruments := exporter.Instruments() // span attributes as tags
package spancapture

import (
	"context"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"obskit/pkg/metriccapture"
)

// InstrumentType is the type reported for instruments derived from
// captured spans.
const InstrumentType = "SPAN"

// Exporter is a sdktrace.SpanExporter that retains finished spans in
// memory. It is safe for concurrent use.
type Exporter struct {
	mu      sync.Mutex
	spans   []sdktrace.ReadOnlySpan
	stopped bool
}

// NewExporter creates an empty capture exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportSpans implements sdktrace.SpanExporter. Batches arriving after
// Shutdown are dropped without error, matching the SDK contract.
func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return nil
	}
	e.spans = append(e.spans, spans...)
	return nil
}

// Shutdown implements sdktrace.SpanExporter. Captured spans remain
// readable after shutdown; only new exports are dropped.
func (e *Exporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
	return ctx.Err()
}

// Spans returns a copy of the captured spans in export order.
func (e *Exporter) Spans() []sdktrace.ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]sdktrace.ReadOnlySpan, len(e.spans))
	copy(out, e.spans)
	return out
}

// SpansOfKind returns the captured spans of the given kind, in export
// order.
func (e *Exporter) SpansOfKind(kind trace.SpanKind) []sdktrace.ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []sdktrace.ReadOnlySpan
	for _, span := range e.spans {
		if span.SpanKind() == kind {
			out = append(out, span)
		}
	}
	return out
}

// Reset discards all captured spans.
func (e *Exporter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = nil
}

// KindTag is the synthetic tag carrying the span kind, rendered with
// trace.SpanKind's canonical lower-case form.
const KindTag = "span.kind"

// Instruments adapts the captured spans to metric instrument
// identities: the span name becomes the instrument name and each span
// attribute becomes a tag, rendered with the attribute value's
// canonical string form. The span kind is added under KindTag. Export
// order is preserved.
func (e *Exporter) Instruments() []metriccapture.Instrument {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]metriccapture.Instrument, 0, len(e.spans))
	for _, span := range e.spans {
		attrs := span.Attributes()
		tags := make(map[string]string, len(attrs)+1)
		for _, kv := range attrs {
			tags[string(kv.Key)] = kv.Value.Emit()
		}
		tags[KindTag] = span.SpanKind().String()
		out = append(out, metriccapture.Instrument{
			Name: span.Name(),
			Type: InstrumentType,
			Tags: tags,
		})
	}
	return out
}
