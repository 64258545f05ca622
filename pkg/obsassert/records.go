package obsassert

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"obskit/pkg/logcapture"
)

// exportAll lets cmp compare values with unexported fields instead of
// panicking; captured parameters are opaque and may be anything.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// CountRecordsWithParam counts the records that carry attribute among
// their parameters. A record matches when any one of its parameters is
// equal to attribute by deep value equality; exact match only, never a
// substring or partial match.
//
// The function is a pure query: it never fails, returns 0 for an empty
// record list, and does not mutate its inputs. Policy such as
// "the attribute must have been logged exactly once" belongs to the
// caller (see RequireLoggedOnce).
func CountRecordsWithParam(attribute any, records []logcapture.Record) int {
	count := 0
	for _, rec := range records {
		for _, param := range rec.Params {
			if cmp.Equal(param, attribute, exportAll) {
				count++
				break
			}
		}
	}
	return count
}
