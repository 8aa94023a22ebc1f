package probe

import (
	"os"
	"path/filepath"

	"mediapeek/internal/config"
)

const (
	defaultHeaderBudget  = 48 << 20
	defaultTailBudget    = 48 << 20
	defaultFullThreshold = 120 << 20
)

// Settings is the immutable tuning an Engine is constructed with. Budgets
// bound how many bytes each window strategy may write; the full threshold
// bounds the small-object shortcut that skips range logic entirely.
type Settings struct {
	HeaderBudgetBytes  int64
	TailBudgetBytes    int64
	FullThresholdBytes int64
	WorkDir            string
	Binary             string
}

// SettingsFromConfig projects the probe-relevant configuration into an
// immutable Settings value.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		HeaderBudgetBytes:  cfg.HeaderBudgetBytes(),
		TailBudgetBytes:    cfg.TailBudgetBytes(),
		FullThresholdBytes: cfg.FullDownloadThresholdBytes(),
		WorkDir:            cfg.WorkDir(),
		Binary:             cfg.MediainfoBinary(),
	}
}

func (s Settings) withDefaults() Settings {
	if s.HeaderBudgetBytes <= 0 {
		s.HeaderBudgetBytes = defaultHeaderBudget
	}
	if s.TailBudgetBytes <= 0 {
		s.TailBudgetBytes = defaultTailBudget
	}
	if s.FullThresholdBytes < 0 {
		s.FullThresholdBytes = defaultFullThreshold
	}
	if s.WorkDir == "" {
		s.WorkDir = filepath.Join(os.TempDir(), "mediapeek")
	}
	return s
}
