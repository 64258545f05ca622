// Package logcapture provides an in-memory slog.Handler that retains
// completed log records together with their ordered attribute values.
//
// The captured records are intended for introspection after the fact,
// typically from a test that wants to verify that a specific value was
// logged, or from a verification tool replaying a log dump.
//
// Key features:
//   - Drop-in slog.Handler with level filtering
//   - Ordered parameter capture (WithAttrs chains included)
//   - Safe for concurrent loggers
//   - JSON-lines parsing for offline slog dumps
//
// Example usage:
//
//	handler := logcapture.NewHandler(nil)
//	logger := slog.New(handler)
//	logger.Info("token validated", slog.String("issuer", "https://idp"))
//
//	for _, rec := range handler.Records() {
//	    fmt.Println(rec.Message, rec.Params)
//	}
package logcapture
