package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeProbe(); err != nil {
		return err
	}
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.workdir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeProbe() error {
	c.Probe.MediainfoBinary = strings.TrimSpace(c.Probe.MediainfoBinary)
	if c.Probe.MediainfoBinary == "" {
		if value, ok := os.LookupEnv("MEDIAPEEK_MEDIAINFO"); ok {
			c.Probe.MediainfoBinary = strings.TrimSpace(value)
		}
	}
	if c.Probe.MediainfoBinary == "" {
		c.Probe.MediainfoBinary = defaultMediainfoBinary
	}

	var err error
	if c.Probe.headerBudgetBytes, err = parseByteSize(c.Probe.HeaderBudget, "probe.header_budget"); err != nil {
		return err
	}
	if c.Probe.tailBudgetBytes, err = parseByteSize(c.Probe.TailBudget, "probe.tail_budget"); err != nil {
		return err
	}
	if c.Probe.fullThresholdBytes, err = parseByteSize(c.Probe.FullDownloadThreshold, "probe.full_download_threshold"); err != nil {
		return err
	}

	if c.Probe.RequestTimeout <= 0 {
		c.Probe.RequestTimeout = defaultRequestTimeout
	}
	if c.Probe.ResolveTimeout <= 0 {
		c.Probe.ResolveTimeout = defaultResolveTimeout
	}
	if c.Probe.RetryAttempts <= 0 {
		c.Probe.RetryAttempts = defaultRetryAttempts
	}
	if c.Probe.RetryDelay <= 0 {
		c.Probe.RetryDelay = defaultRetryDelay
	}
	c.Probe.UserAgent = strings.TrimSpace(c.Probe.UserAgent)
	if c.Probe.UserAgent == "" {
		c.Probe.UserAgent = defaultUserAgent
	}
	return nil
}

func (c *Config) normalizeJournal() error {
	var err error
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = defaultJournalPath
	}
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeRender() {
	if c.Render.ChunkLimit <= 0 {
		c.Render.ChunkLimit = defaultChunkLimit
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// parseByteSize interprets a human byte-size string. Suffixes use binary
// multiples: KB/KiB/K = 1024, MB/MiB/M = 1024^2, GB/GiB/G = 1024^3. A bare
// number is taken as bytes.
func parseByteSize(value, field string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("%s must be set", field)
	}

	upper := strings.ToUpper(trimmed)
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(upper, "GIB"), strings.HasSuffix(upper, "GB"):
		multiplier = 1 << 30
		upper = strings.TrimSuffix(strings.TrimSuffix(upper, "GIB"), "GB")
	case strings.HasSuffix(upper, "MIB"), strings.HasSuffix(upper, "MB"):
		multiplier = 1 << 20
		upper = strings.TrimSuffix(strings.TrimSuffix(upper, "MIB"), "MB")
	case strings.HasSuffix(upper, "KIB"), strings.HasSuffix(upper, "KB"):
		multiplier = 1 << 10
		upper = strings.TrimSuffix(strings.TrimSuffix(upper, "KIB"), "KB")
	case strings.HasSuffix(upper, "G"):
		multiplier = 1 << 30
		upper = strings.TrimSuffix(upper, "G")
	case strings.HasSuffix(upper, "M"):
		multiplier = 1 << 20
		upper = strings.TrimSuffix(upper, "M")
	case strings.HasSuffix(upper, "K"):
		multiplier = 1 << 10
		upper = strings.TrimSuffix(upper, "K")
	case strings.HasSuffix(upper, "B"):
		upper = strings.TrimSuffix(upper, "B")
	}

	number, err := strconv.ParseInt(strings.TrimSpace(upper), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid byte size %q", field, value)
	}
	if number < 0 {
		return 0, fmt.Errorf("%s: byte size must not be negative", field)
	}
	return number * multiplier, nil
}
