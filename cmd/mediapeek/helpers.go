package main

import (
	"context"
	"log/slog"

	"mediapeek/internal/config"
	"mediapeek/internal/fetch"
	"mediapeek/internal/journal"
	"mediapeek/internal/logging"
	"mediapeek/internal/probe"
	"mediapeek/internal/source"
)

// newProbeEngine wires a probe engine from the effective configuration.
func newProbeEngine(cfg *config.Config, logger *slog.Logger) *probe.Engine {
	client := fetch.NewClient(
		fetch.WithRequestTimeout(cfg.RequestTimeout()),
		fetch.WithResolveTimeout(cfg.ResolveTimeout()),
		fetch.WithRetryAttempts(cfg.Probe.RetryAttempts),
		fetch.WithRetryDelay(cfg.RetryDelay()),
		fetch.WithUserAgent(cfg.Probe.UserAgent),
		fetch.WithLogger(logger),
	)
	return probe.NewEngine(probe.SettingsFromConfig(cfg),
		probe.WithClient(client),
		probe.WithLogger(logger),
	)
}

// locatorSource is the journal identity of a probed object: the URL for
// remote locators, the resolved path for local ones.
func locatorSource(loc source.Locator) string {
	if loc.IsRemote() {
		return loc.URL()
	}
	return loc.Path()
}

// recordProbe appends the outcome to the history journal. Journal trouble
// never fails the probe; it is logged and the report still prints.
func recordProbe(ctx context.Context, cfg *config.Config, logger *slog.Logger, loc source.Locator, name string, outcome probe.Outcome) {
	if cfg == nil || !cfg.Journal.Enabled {
		return
	}
	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		logger.Warn("probe journal unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	entry := journal.Entry{
		Source:      locatorSource(loc),
		DisplayName: name,
		SizeBytes:   outcome.SizeBytes,
		Strategy:    string(outcome.Strategy),
		Tracks:      outcome.Tracks,
	}
	if _, err := store.Record(ctx, entry); err != nil {
		logger.Warn("probe journal write failed", logging.Error(err))
	}
}
