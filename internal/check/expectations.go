package check

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LogRule expects a parameter value to appear in a number of captured
// log records.
type LogRule struct {
	// Param is the value expected among a record's parameters.
	Param string `yaml:"param"`

	// Count is the exact number of records that must match. When
	// omitted it defaults to 1, the usual "logged exactly once"
	// policy.
	Count *int `yaml:"count,omitempty"`
}

// Want returns the effective expected count.
func (r LogRule) Want() int {
	if r.Count == nil {
		return 1
	}
	return *r.Count
}

// MetricRule expects a metric family's instruments to carry exactly
// the given tag values, in order.
type MetricRule struct {
	// Name is the metric family to inspect.
	Name string `yaml:"name"`

	// Tag is the tag key whose values are joined and compared.
	Tag string `yaml:"tag"`

	// Values are the expected tag values in instrument order. An
	// instrument without the tag is expected as an empty string slot.
	Values []string `yaml:"values"`
}

// Expectations is a parsed rule file.
type Expectations struct {
	Logs    []LogRule    `yaml:"logs"`
	Metrics []MetricRule `yaml:"metrics"`
}

// Load parses and validates an expectation document.
func Load(r io.Reader) (*Expectations, error) {
	var exps Expectations
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&exps); err != nil {
		return nil, fmt.Errorf("decode expectations: %w", err)
	}
	if err := exps.validate(); err != nil {
		return nil, err
	}
	return &exps, nil
}

// LoadFile reads an expectation document from disk.
func LoadFile(path string) (*Expectations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open expectations: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (e *Expectations) validate() error {
	if len(e.Logs) == 0 && len(e.Metrics) == 0 {
		return fmt.Errorf("expectations: at least one log or metric rule is required")
	}
	for i, rule := range e.Logs {
		if rule.Param == "" {
			return fmt.Errorf("expectations: logs[%d]: param must not be empty", i)
		}
		if rule.Count != nil && *rule.Count < 0 {
			return fmt.Errorf("expectations: logs[%d]: count must not be negative", i)
		}
	}
	for i, rule := range e.Metrics {
		if rule.Name == "" {
			return fmt.Errorf("expectations: metrics[%d]: name must not be empty", i)
		}
		if rule.Tag == "" {
			return fmt.Errorf("expectations: metrics[%d]: tag must not be empty", i)
		}
	}
	return nil
}
