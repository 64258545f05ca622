package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *ObscheckConfig {
	return &ObscheckConfig{
		LogPath:       "app.log",
		MetricsPath:   "metrics.txt",
		RulesPath:     "expectations.yaml",
		ScrapeTimeout: 10 * time.Second,
	}
}

func TestLoadObscheckConfig_Defaults(t *testing.T) {
	cfg := LoadObscheckConfig()

	assert.Empty(t, cfg.LogPath)
	assert.Empty(t, cfg.MetricsPath)
	assert.Empty(t, cfg.MetricsURL)
	assert.Equal(t, "expectations.yaml", cfg.RulesPath)
	assert.Equal(t, 10*time.Second, cfg.ScrapeTimeout)
	assert.False(t, cfg.Strict)
}

func TestLoadObscheckConfig_FromEnv(t *testing.T) {
	t.Setenv("OBSCHECK_LOGS", "/var/log/app.jsonl")
	t.Setenv("OBSCHECK_METRICS_URL", "http://localhost:9090/metrics")
	t.Setenv("OBSCHECK_RULES", "rules.yaml")
	t.Setenv("OBSCHECK_SCRAPE_TIMEOUT", "30s")
	t.Setenv("OBSCHECK_STRICT", "true")

	cfg := LoadObscheckConfig()

	assert.Equal(t, "/var/log/app.jsonl", cfg.LogPath)
	assert.Equal(t, "http://localhost:9090/metrics", cfg.MetricsURL)
	assert.Equal(t, "rules.yaml", cfg.RulesPath)
	assert.Equal(t, 30*time.Second, cfg.ScrapeTimeout)
	assert.True(t, cfg.Strict)
}

func TestObscheckConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ObscheckConfig)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(*ObscheckConfig) {},
		},
		{
			name:   "metrics URL instead of snapshot passes",
			mutate: func(c *ObscheckConfig) { c.MetricsPath = ""; c.MetricsURL = "http://localhost:9090/metrics" },
		},
		{
			name:    "missing log path",
			mutate:  func(c *ObscheckConfig) { c.LogPath = "" },
			wantErr: "log dump path is required",
		},
		{
			name:    "missing metrics source",
			mutate:  func(c *ObscheckConfig) { c.MetricsPath = "" },
			wantErr: "metrics snapshot or scrape URL is required",
		},
		{
			name:    "both metrics sources set",
			mutate:  func(c *ObscheckConfig) { c.MetricsURL = "http://localhost:9090/metrics" },
			wantErr: "mutually exclusive",
		},
		{
			name:    "empty rules path",
			mutate:  func(c *ObscheckConfig) { c.RulesPath = "" },
			wantErr: "rules path must not be empty",
		},
		{
			name:    "timeout below range",
			mutate:  func(c *ObscheckConfig) { c.ScrapeTimeout = 100 * time.Millisecond },
			wantErr: "invalid scrape timeout",
		},
		{
			name:    "timeout above range",
			mutate:  func(c *ObscheckConfig) { c.ScrapeTimeout = time.Hour },
			wantErr: "invalid scrape timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
