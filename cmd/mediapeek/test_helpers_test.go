package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mediapeek/internal/config"
	"mediapeek/internal/testsupport"
)

// sampleReport is what the fake inspection tool prints for every probe.
// It carries two audio tracks so track parsing, captions, and the journal
// all have something to chew on.
const sampleReport = `General
Complete name                            : sample.mkv
Format                                   : Matroska
File size                                : 700 MiB
Duration                                 : 1 h 58 min

Video
Format                                   : AVC
Duration                                 : 1 h 58 min
Width                                    : 1 920 pixels

Audio #1
Format                                   : E-AC-3
Commercial name                          : Dolby Digital Plus
Bit rate                                 : 640 kb/s
Channel(s)                               : 6 channels
Language                                 : English

Audio #2
Format                                   : AAC
Bit rate                                 : 128 kb/s
Channel(s)                               : 2 channels
Language                                 : Tamil
`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(homeDir, ".config", "mediapeek", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

// reportTool returns a fake inspection binary that prints sampleReport.
func reportTool(t *testing.T) string {
	t.Helper()
	return testsupport.FakeTool(t, "mediainfo", "#!/bin/sh\ncat <<'EOF'\n"+sampleReport+"EOF\n")
}

// sampleMedia writes a small stand-in media file and returns its path.
func sampleMedia(t *testing.T, env *cliTestEnv) string {
	t.Helper()
	path := filepath.Join(env.baseDir, "sample.mkv")
	testsupport.WriteFile(t, path, 2048)
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
