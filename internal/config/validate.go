package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateJournal(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		return errors.New("paths.workdir must be set")
	}
	return nil
}

func (c *Config) validateProbe() error {
	if strings.TrimSpace(c.Probe.MediainfoBinary) == "" {
		return errors.New("probe.mediainfo_binary must be set")
	}
	if c.Probe.headerBudgetBytes <= 0 {
		return errors.New("probe.header_budget must be positive")
	}
	if c.Probe.tailBudgetBytes <= 0 {
		return errors.New("probe.tail_budget must be positive")
	}
	if c.Probe.fullThresholdBytes < 0 {
		return errors.New("probe.full_download_threshold must not be negative")
	}
	if err := ensurePositiveMap(map[string]int{
		"probe.request_timeout": c.Probe.RequestTimeout,
		"probe.resolve_timeout": c.Probe.ResolveTimeout,
		"probe.retry_attempts":  c.Probe.RetryAttempts,
		"probe.retry_delay":     c.Probe.RetryDelay,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.ChunkLimit < 256 {
		return errors.New("render.chunk_limit must be at least 256")
	}
	return nil
}

func (c *Config) validateJournal() error {
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path must be set when journal.enabled is true")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
