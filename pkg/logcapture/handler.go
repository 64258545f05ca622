package logcapture

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// HandlerOptions configures a capture Handler.
type HandlerOptions struct {
	// Level reports the minimum record level that will be captured.
	// If nil, every level is captured.
	Level slog.Leveler
}

// sink is the shared record store. Handler clones produced by
// WithAttrs and WithGroup all append to the same sink, so a single
// Records call observes everything the logger family emitted.
type sink struct {
	mu      sync.Mutex
	records []Record
}

// Handler is a slog.Handler that stores every handled record in
// memory instead of formatting it. It is safe for concurrent use by
// multiple goroutines sharing one logger.
type Handler struct {
	sink      *sink
	opts      HandlerOptions
	captureID string

	// preformatted attribute values accumulated via WithAttrs,
	// in accumulation order.
	attrValues []any
}

// NewHandler creates a capture handler. opts may be nil for defaults
// (capture all levels). Each handler family is identified by a unique
// capture session ID, surfaced in diagnostics so output from parallel
// captures can be told apart.
func NewHandler(opts *HandlerOptions) *Handler {
	h := &Handler{
		sink:      &sink{},
		captureID: uuid.NewString(),
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// CaptureID returns the unique identifier of this capture session.
// Clones created by WithAttrs and WithGroup share the same ID.
func (h *Handler) CaptureID() string {
	return h.captureID
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.opts.Level == nil {
		return true
	}
	return level >= h.opts.Level.Level()
}

// Handle implements slog.Handler. The record's attribute values are
// resolved and stored in order: WithAttrs values first, then the
// values attached to this call.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	params := make([]any, 0, len(h.attrValues)+r.NumAttrs())
	params = append(params, h.attrValues...)
	r.Attrs(func(a slog.Attr) bool {
		params = append(params, a.Value.Resolve().Any())
		return true
	})

	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	h.sink.records = append(h.sink.records, Record{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Params:  params,
	})
	return nil
}

// WithAttrs implements slog.Handler. The returned handler shares the
// record store with h; the given attribute values are prepended to
// the parameters of every record it subsequently captures.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrValues = make([]any, 0, len(h.attrValues)+len(attrs))
	clone.attrValues = append(clone.attrValues, h.attrValues...)
	for _, a := range attrs {
		clone.attrValues = append(clone.attrValues, a.Value.Resolve().Any())
	}
	return &clone
}

// WithGroup implements slog.Handler. Grouping affects key qualification
// only; captured parameter values are unaffected, so the handler is
// returned unchanged.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of the records captured so far, in emission
// order. The copy shares parameter slices with the store; callers
// must treat them as read-only.
func (h *Handler) Records() []Record {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	out := make([]Record, len(h.sink.records))
	copy(out, h.sink.records)
	return out
}

// Len reports the number of records captured so far.
func (h *Handler) Len() int {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	return len(h.sink.records)
}

// Reset discards all captured records. The capture ID is retained.
func (h *Handler) Reset() {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	h.sink.records = nil
}
