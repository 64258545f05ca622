package check

import (
	"fmt"
	"strings"

	"obskit/pkg/logcapture"
	"obskit/pkg/metriccapture"
	"obskit/pkg/obsassert"
)

// Result is the outcome of one evaluated rule.
type Result struct {
	// Rule is a short human-readable identity of the rule.
	Rule string

	// Passed reports whether the expectation held.
	Passed bool

	// Detail explains a failure in terms of what was actually
	// captured. Empty for passing rules.
	Detail string
}

// Report collects the results of one evaluation run.
type Report struct {
	Results []Result
}

// Failed reports whether any rule in the report did not hold.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return true
		}
	}
	return false
}

// Evaluate runs every expectation rule against the captured records
// and instruments. Rules are evaluated in declaration order, logs
// first; evaluation always runs to completion so the report shows all
// failures at once. m may be nil to skip instrumentation.
func Evaluate(records []logcapture.Record, instruments []metriccapture.Instrument, exps *Expectations, m *Metrics) Report {
	var report Report

	for _, rule := range exps.Logs {
		got := obsassert.CountRecordsWithParam(rule.Param, records)
		res := Result{
			Rule:   fmt.Sprintf("log param %q", rule.Param),
			Passed: got == rule.Want(),
		}
		if !res.Passed {
			res.Detail = fmt.Sprintf("parameter %q appeared in %d records, want %d", rule.Param, got, rule.Want())
		}
		m.record("log", res.Passed)
		report.Results = append(report.Results, res)
	}

	for _, rule := range exps.Metrics {
		family := metriccapture.Filter(instruments, rule.Name)
		got := obsassert.JoinTagValues(rule.Tag, family)
		want := strings.Join(rule.Values, ",")
		res := Result{
			Rule:   fmt.Sprintf("metric %s tag %q", rule.Name, rule.Tag),
			Passed: got == want,
		}
		if !res.Passed {
			res.Detail = fmt.Sprintf("tag %q values were %q, want %q across %d instruments",
				rule.Tag, got, want, len(family))
		}
		m.record("metric", res.Passed)
		report.Results = append(report.Results, res)
	}

	return report
}
