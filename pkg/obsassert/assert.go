package obsassert

import (
	"strings"

	"github.com/stretchr/testify/require"

	"obskit/pkg/logcapture"
)

// tHelper is implemented by *testing.T; calling Helper keeps failure
// line numbers pointing at the caller.
type tHelper interface {
	Helper()
}

// RequireLoggedOnce asserts the "exactly one" policy on top of
// CountRecordsWithParam: attribute must appear as a parameter in
// exactly one of the source's records. Zero matches means the expected
// message was never emitted; more than one means a duplicate or
// unexpected emission. The failure message lists the captured record
// messages so the mismatch can be diagnosed without re-running.
func RequireLoggedOnce(t require.TestingT, src LogRecordSource, attribute any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	records := src.Records()
	count := CountRecordsWithParam(attribute, records)
	require.Equalf(t, 1, count,
		"expected exactly one log record with parameter %v, found %d; captured messages: %s",
		attribute, count, joinMessages(records))
}

// RequireTagValues asserts that joining the source's values for key
// yields exactly the given values in order. On mismatch the failure
// message shows the values that were actually present, one slot per
// instrument.
func RequireTagValues(t require.TestingT, src TaggedInstrumentSource, key string, values ...string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	got := JoinFromSource(key, src)
	require.Equalf(t, strings.Join(values, ","), got,
		"unexpected values for tag %q; instruments carried: %s", key, got)
}

func joinMessages(records []logcapture.Record) string {
	msgs := make([]string, len(records))
	for i, rec := range records {
		msgs[i] = rec.Message
	}
	return strings.Join(msgs, ",")
}
