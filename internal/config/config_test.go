package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediapeek/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantWork := filepath.Join(tempHome, ".local", "share", "mediapeek")
	if cfg.WorkDir() != wantWork {
		t.Fatalf("unexpected workdir: got %q want %q", cfg.WorkDir(), wantWork)
	}
	if cfg.SessionsDir() != filepath.Join(wantWork, "sessions") {
		t.Fatalf("unexpected sessions dir: %q", cfg.SessionsDir())
	}
	if cfg.MediainfoBinary() != "mediainfo" {
		t.Fatalf("unexpected mediainfo binary: %q", cfg.MediainfoBinary())
	}
	if got := cfg.HeaderBudgetBytes(); got != 48<<20 {
		t.Fatalf("unexpected header budget: %d", got)
	}
	if got := cfg.TailBudgetBytes(); got != 48<<20 {
		t.Fatalf("unexpected tail budget: %d", got)
	}
	if got := cfg.FullDownloadThresholdBytes(); got != 120<<20 {
		t.Fatalf("unexpected full download threshold: %d", got)
	}
	if cfg.Render.ChunkLimit != 3500 {
		t.Fatalf("unexpected chunk limit: %d", cfg.Render.ChunkLimit)
	}
	if !cfg.Journal.Enabled {
		t.Fatal("expected journal enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesFileAndByteSizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	body := strings.Join([]string{
		"[probe]",
		`header_budget = "1MiB"`,
		`tail_budget = "2048KB"`,
		`full_download_threshold = "1024"`,
		"request_timeout = 5",
		"[render]",
		"chunk_limit = 1000",
		"[logging]",
		`format = "JSON"`,
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file to be used, got exists=%v resolved=%q", exists, resolved)
	}
	if got := cfg.HeaderBudgetBytes(); got != 1<<20 {
		t.Fatalf("header budget = %d, want %d", got, 1<<20)
	}
	if got := cfg.TailBudgetBytes(); got != 2048<<10 {
		t.Fatalf("tail budget = %d, want %d", got, 2048<<10)
	}
	if got := cfg.FullDownloadThresholdBytes(); got != 1024 {
		t.Fatalf("full download threshold = %d, want 1024", got)
	}
	if cfg.Probe.RequestTimeout != 5 {
		t.Fatalf("request timeout = %d, want 5", cfg.Probe.RequestTimeout)
	}
	if cfg.Render.ChunkLimit != 1000 {
		t.Fatalf("chunk limit = %d, want 1000", cfg.Render.ChunkLimit)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadByteSize(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[probe]\nheader_budget = \"lots\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid byte size")
	}
}

func TestLoadRejectsTinyChunkLimit(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nchunk_limit = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for chunk limit below minimum")
	}
}

func TestMediainfoBinaryEnvFallback(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("MEDIAPEEK_MEDIAINFO", "/opt/mediainfo/bin/mediainfo")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[probe]\nmediainfo_binary = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MediainfoBinary() != "/opt/mediainfo/bin/mediainfo" {
		t.Fatalf("expected env fallback, got %q", cfg.MediainfoBinary())
	}
}

func TestEnsureDirectories(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.WorkDir(), cfg.SessionsDir(), cfg.LogDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected directory at %s", dir)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	defaults := config.Default()
	if cfg.Probe.HeaderBudget != defaults.Probe.HeaderBudget {
		t.Fatalf("sample header budget %q differs from default %q", cfg.Probe.HeaderBudget, defaults.Probe.HeaderBudget)
	}
	if cfg.Render.ChunkLimit != defaults.Render.ChunkLimit {
		t.Fatalf("sample chunk limit %d differs from default %d", cfg.Render.ChunkLimit, defaults.Render.ChunkLimit)
	}
}
