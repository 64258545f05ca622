package logcapture

import (
	"log/slog"
	"time"
)

// Record is a single captured logging event. It is immutable once
// stored: the capture handler resolves attribute values at handling
// time, and queries only read the stored copy.
type Record struct {
	// Time is the event timestamp as reported by slog.
	Time time.Time

	// Level is the severity the record was emitted at.
	Level slog.Level

	// Message is the message template passed to the logger.
	Message string

	// Params holds the resolved attribute values in emission order:
	// values accumulated through WithAttrs first, then the values
	// attached to the individual call. Values are opaque; matching
	// against them is the caller's concern (see pkg/obsassert).
	Params []any
}
