// Package main provides the obscheck verification tool.
// Usage: obscheck -logs app.jsonl -metrics metrics.txt [-rules expectations.yaml]
//
// obscheck loads a slog JSON-lines dump and a Prometheus metrics
// snapshot (file or live scrape), evaluates a YAML expectation file
// against them, and exits non-zero when an expectation does not hold.
//
// Exit codes: 0 all expectations hold, 1 at least one failed,
// 2 inputs could not be loaded.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/prometheus/client_golang/prometheus"

	"obskit/internal/check"
	"obskit/internal/config"
	"obskit/internal/observability/logging"
	"obskit/pkg/logcapture"
	"obskit/pkg/metriccapture"
	"obskit/pkg/obsassert"
)

func main() {
	logger := logging.NewLogger()
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(2)
	}

	exps, err := check.LoadFile(cfg.RulesPath)
	if err != nil {
		logger.Error("failed to load expectations",
			slog.String("path", cfg.RulesPath),
			slog.Any("error", err))
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ScrapeTimeout)
	defer cancel()

	records, instruments, err := loadInputs(ctx, cfg)
	if err != nil {
		logger.Error("failed to load inputs",
			slog.String("detail", obsassert.RootCauseString(err)))
		os.Exit(2)
	}
	logger.Info("inputs loaded",
		slog.Int("records", len(records)),
		slog.Int("instruments", len(instruments)))

	if cfg.Strict && (len(records) == 0 || len(instruments) == 0) {
		logger.Error("strict mode: empty input",
			slog.Int("records", len(records)),
			slog.Int("instruments", len(instruments)))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	metrics := check.NewMetrics(reg)

	report := check.Evaluate(records, instruments, exps, metrics)
	for _, res := range report.Results {
		if res.Passed {
			logger.Info("expectation held", slog.String("rule", res.Rule))
			continue
		}
		logger.Error("expectation failed",
			slog.String("rule", res.Rule),
			slog.String("detail", res.Detail))
	}

	if report.Failed() {
		os.Exit(1)
	}
}

// loadConfig layers command-line flags over the environment-derived
// configuration. Flags win when set.
func loadConfig() *config.ObscheckConfig {
	cfg := config.LoadObscheckConfig()

	flag.StringVar(&cfg.LogPath, "logs", cfg.LogPath, "slog JSON-lines dump to inspect")
	flag.StringVar(&cfg.MetricsPath, "metrics", cfg.MetricsPath, "Prometheus text snapshot to inspect")
	flag.StringVar(&cfg.MetricsURL, "metrics-url", cfg.MetricsURL, "live /metrics endpoint to scrape instead of a snapshot")
	flag.StringVar(&cfg.RulesPath, "rules", cfg.RulesPath, "YAML expectation file")
	flag.DurationVar(&cfg.ScrapeTimeout, "timeout", cfg.ScrapeTimeout, "input loading timeout")
	flag.BoolVar(&cfg.Strict, "strict", cfg.Strict, "treat empty inputs as a failure")
	flag.Parse()

	return cfg
}

// loadInputs reads the log dump and the metrics source concurrently.
func loadInputs(ctx context.Context, cfg *config.ObscheckConfig) ([]logcapture.Record, []metriccapture.Instrument, error) {
	var (
		records     []logcapture.Record
		instruments []metriccapture.Instrument
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = loadLogDump(cfg.LogPath)
		return err
	})
	g.Go(func() error {
		var err error
		if cfg.MetricsURL != "" {
			instruments, err = scrapeMetrics(ctx, cfg.MetricsURL)
		} else {
			instruments, err = loadMetricsSnapshot(cfg.MetricsPath)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, instruments, nil
}

func loadLogDump(path string) ([]logcapture.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log dump: %w", err)
	}
	defer f.Close()
	return logcapture.ParseJSONLines(f)
}

func loadMetricsSnapshot(path string) ([]metriccapture.Instrument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metrics snapshot: %w", err)
	}
	defer f.Close()
	return metriccapture.ParseText(f)
}

func scrapeMetrics(ctx context.Context, url string) ([]metriccapture.Instrument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build scrape request: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape metrics endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrape metrics endpoint: unexpected status %s", resp.Status)
	}
	return metriccapture.ParseText(resp.Body)
}
