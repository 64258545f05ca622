package metriccapture

// Instrument is the immutable identity of one metric series: its
// family name, family type and tag set. It carries no measurement
// values; the identity alone is what tag-level assertions need.
type Instrument struct {
	// Name is the metric family name, e.g. "http_requests_total".
	Name string

	// Type is the family type as reported by the source, e.g.
	// "COUNTER", "GAUGE", "HISTOGRAM".
	Type string

	// Tags maps tag key to tag value. Keys are unique per instrument.
	Tags map[string]string
}

// Tag returns the value recorded for key, or the empty string when the
// instrument carries no such tag. The empty placeholder keeps joined
// diagnostics positionally aligned with the instrument list.
func (i Instrument) Tag(key string) string {
	return i.Tags[key]
}

// Filter returns the instruments belonging to the named family, in
// input order. The result shares tag maps with the input.
func Filter(instruments []Instrument, name string) []Instrument {
	var out []Instrument
	for _, in := range instruments {
		if in.Name == name {
			out = append(out, in)
		}
	}
	return out
}
