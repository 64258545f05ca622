package config

import (
	"fmt"
	"time"

	"obskit/pkg/config"
)

// ObscheckConfig holds configuration for the obscheck verification tool.
type ObscheckConfig struct {
	// LogPath is the slog JSON-lines dump to inspect.
	// Env: OBSCHECK_LOGS. No default; required.
	LogPath string

	// MetricsPath is a Prometheus text exposition snapshot on disk.
	// Env: OBSCHECK_METRICS. Mutually exclusive with MetricsURL.
	MetricsPath string

	// MetricsURL is a live /metrics endpoint to scrape instead of a
	// snapshot file. Env: OBSCHECK_METRICS_URL.
	MetricsURL string

	// RulesPath is the YAML expectation file.
	// Env: OBSCHECK_RULES. Default: "expectations.yaml".
	RulesPath string

	// ScrapeTimeout bounds the metrics scrape and the overall input
	// loading. Env: OBSCHECK_SCRAPE_TIMEOUT. Default: 10s.
	ScrapeTimeout time.Duration

	// Strict makes an empty input (no records, or no instruments)
	// a failure on its own. Env: OBSCHECK_STRICT. Default: false.
	Strict bool
}

// LoadObscheckConfig reads the obscheck configuration from the
// environment and validates it. Values set through flags should be
// applied by the caller on top of the returned config before Validate.
func LoadObscheckConfig() *ObscheckConfig {
	return &ObscheckConfig{
		LogPath:       config.GetEnvString("OBSCHECK_LOGS", ""),
		MetricsPath:   config.GetEnvString("OBSCHECK_METRICS", ""),
		MetricsURL:    config.GetEnvString("OBSCHECK_METRICS_URL", ""),
		RulesPath:     config.GetEnvString("OBSCHECK_RULES", "expectations.yaml"),
		ScrapeTimeout: config.GetEnvDuration("OBSCHECK_SCRAPE_TIMEOUT", 10*time.Second),
		Strict:        config.GetEnvBool("OBSCHECK_STRICT", false),
	}
}

// Validate checks that the configuration is complete and coherent.
func (c *ObscheckConfig) Validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("config: log dump path is required (OBSCHECK_LOGS or -logs)")
	}
	if c.MetricsPath == "" && c.MetricsURL == "" {
		return fmt.Errorf("config: a metrics snapshot or scrape URL is required (OBSCHECK_METRICS, OBSCHECK_METRICS_URL, -metrics or -metrics-url)")
	}
	if c.MetricsPath != "" && c.MetricsURL != "" {
		return fmt.Errorf("config: metrics snapshot and scrape URL are mutually exclusive")
	}
	if c.RulesPath == "" {
		return fmt.Errorf("config: rules path must not be empty")
	}
	if err := config.ValidateDurationRange(c.ScrapeTimeout, time.Second, 10*time.Minute); err != nil {
		return fmt.Errorf("config: invalid scrape timeout: %w", err)
	}
	return nil
}
