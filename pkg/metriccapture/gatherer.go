package metriccapture

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/model"
)

// FromGatherer gathers the registry and flattens every metric family
// into one Instrument per child series. Families arrive sorted by name
// from the gatherer and series keep the gatherer's order, so repeated
// calls over an unchanged registry yield the same instrument list.
func FromGatherer(g prometheus.Gatherer) ([]Instrument, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	return flatten(families), nil
}

// ParseText decodes a Prometheus text exposition snapshot (the /metrics
// wire format) into an instrument list. Families are ordered by name to
// keep the result deterministic; series keep their document order
// within each family.
func ParseText(r io.Reader) ([]Instrument, error) {
	parser := expfmt.NewTextParser(model.UTF8Validation)
	byName, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, fmt.Errorf("parse metrics snapshot: %w", err)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	families := make([]*dto.MetricFamily, 0, len(byName))
	for _, name := range names {
		families = append(families, byName[name])
	}
	return flatten(families), nil
}

func flatten(families []*dto.MetricFamily) []Instrument {
	var out []Instrument
	for _, family := range families {
		for _, series := range family.GetMetric() {
			tags := make(map[string]string, len(series.GetLabel()))
			for _, label := range series.GetLabel() {
				tags[label.GetName()] = label.GetValue()
			}
			out = append(out, Instrument{
				Name: family.GetName(),
				Type: family.GetType().String(),
				Tags: tags,
			})
		}
	}
	return out
}
