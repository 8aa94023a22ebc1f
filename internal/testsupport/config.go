package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mediapeek/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	raw     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The raw values are written to a TOML file and loaded through config.Load
// so normalization and validation run exactly as they do in production.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	raw := config.Default()
	raw.Paths.WorkDir = filepath.Join(base, "work")
	raw.Paths.LogDir = filepath.Join(base, "logs")
	raw.Journal.Path = filepath.Join(base, "journal.db")

	builder := &configBuilder{t: t, baseDir: base, raw: &raw}
	for _, opt := range opts {
		opt(builder)
	}

	payload, err := toml.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal test config: %v", err)
	}
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("load test config: %v", err)
	}
	return cfg
}

// WithMediainfoBinary points the probe at a specific inspection command.
func WithMediainfoBinary(command string) ConfigOption {
	return func(b *configBuilder) {
		b.raw.Probe.MediainfoBinary = command
	}
}

// WithJournalDisabled turns off probe history recording.
func WithJournalDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.raw.Journal.Enabled = false
	}
}

// WithChunkLimit overrides the display chunk limit.
func WithChunkLimit(limit int) ConfigOption {
	return func(b *configBuilder) {
		b.raw.Render.ChunkLimit = limit
	}
}

// WithBudgets overrides the window byte budgets with raw size strings.
func WithBudgets(header, tail string) ConfigOption {
	return func(b *configBuilder) {
		b.raw.Probe.HeaderBudget = header
		b.raw.Probe.TailBudget = tail
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the inspection binary is
// stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"mediainfo"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}
