package check

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments rule evaluation. The counters live on a caller
// supplied registry so a verification run's own registry can in turn
// be inspected with pkg/metriccapture.
type Metrics struct {
	// RulesEvaluatedTotal counts evaluated rules by kind (log, metric)
	// and result (pass, fail).
	RulesEvaluatedTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the evaluation metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RulesEvaluatedTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "obscheck_rules_evaluated_total",
			Help: "Total number of expectation rules evaluated",
		}, []string{"kind", "result"}),
	}
}

func (m *Metrics) record(kind string, passed bool) {
	if m == nil {
		return
	}
	result := "pass"
	if !passed {
		result = "fail"
	}
	m.RulesEvaluatedTotal.WithLabelValues(kind, result).Inc()
}
