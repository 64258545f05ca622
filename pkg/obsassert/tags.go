package obsassert

import (
	"strings"

	"obskit/pkg/metriccapture"
)

// JoinTagValues joins the values recorded for key across the given
// instruments, in input order, separated by single commas with no
// leading or trailing separator. An instrument without the tag
// contributes an empty slot at its position, so the result stays
// positionally aligned with the instrument list — useful when the
// string is shown as a diagnostic of what was actually present.
//
// An empty instrument list yields the empty string. The function never
// fails and does not mutate its inputs.
func JoinTagValues(key string, instruments []metriccapture.Instrument) string {
	values := make([]string, len(instruments))
	for i, in := range instruments {
		values[i] = in.Tag(key)
	}
	return strings.Join(values, ",")
}
