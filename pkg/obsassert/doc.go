// Package obsassert answers introspection queries over captured
// observability signals: log records with ordered parameters, and
// metric instruments with tag sets.
//
// The package separates two layers on purpose:
//
//   - Pure queries: CountRecordsWithParam and JoinTagValues compute a
//     count and a joined string. They never fail, never mutate their
//     inputs, and apply no policy.
//   - Assertion policy: RequireLoggedOnce and RequireTagValues apply
//     the "exactly one record" and "exactly these values" policies on
//     top of the queries and raise descriptive test failures.
//
// Capture sources from pkg/logcapture, pkg/metriccapture and
// pkg/spancapture plug in through the LogRecordSource and
// TaggedInstrumentSource interfaces.
package obsassert
