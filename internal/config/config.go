package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	WorkDir string `toml:"workdir"`
	LogDir  string `toml:"log_dir"`
}

// Probe contains configuration for the probe engine: byte budgets, network
// timeouts, retry policy, and the inspection binary.
type Probe struct {
	MediainfoBinary       string `toml:"mediainfo_binary"`
	HeaderBudget          string `toml:"header_budget"`
	TailBudget            string `toml:"tail_budget"`
	FullDownloadThreshold string `toml:"full_download_threshold"`
	RequestTimeout        int    `toml:"request_timeout"`
	ResolveTimeout        int    `toml:"resolve_timeout"`
	RetryAttempts         int    `toml:"retry_attempts"`
	RetryDelay            int    `toml:"retry_delay"`
	UserAgent             string `toml:"user_agent"`

	headerBudgetBytes  int64
	tailBudgetBytes    int64
	fullThresholdBytes int64
}

// Render contains configuration for display output.
type Render struct {
	ChunkLimit int `toml:"chunk_limit"`
}

// Journal contains configuration for the probe history store.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mediapeek.
//
// Configuration sections by subsystem:
//   - Paths: scratch workspace and log directories
//   - Probe: byte budgets, timeouts, retry policy, mediainfo binary
//   - Render: display chunking
//   - Journal: probe history store
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Probe   Probe   `toml:"probe"`
	Render  Render  `toml:"render"`
	Journal Journal `toml:"journal"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mediapeek/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and all byte-size strings parsed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("mediapeek.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the scratch and log directories. The journal
// directory is created on a best-effort basis so a read-only history location
// does not block probing.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.WorkDir, c.SessionsDir(), c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) != "" {
		_ = os.MkdirAll(filepath.Dir(c.Journal.Path), 0o755)
	}
	return nil
}

// WorkDir returns the scratch workspace root.
func (c *Config) WorkDir() string {
	return c.Paths.WorkDir
}

// SessionsDir returns the directory holding per-session byte windows.
func (c *Config) SessionsDir() string {
	return filepath.Join(c.Paths.WorkDir, "sessions")
}

// LogDir returns the log directory.
func (c *Config) LogDir() string {
	return c.Paths.LogDir
}

// MediainfoBinary returns the media inspection executable name.
func (c *Config) MediainfoBinary() string {
	return c.Probe.MediainfoBinary
}

// HeaderBudgetBytes returns the parsed header window budget.
func (c *Config) HeaderBudgetBytes() int64 {
	return c.Probe.headerBudgetBytes
}

// TailBudgetBytes returns the parsed tail window budget.
func (c *Config) TailBudgetBytes() int64 {
	return c.Probe.tailBudgetBytes
}

// FullDownloadThresholdBytes returns the parsed threshold below which small
// objects are downloaded whole instead of windowed.
func (c *Config) FullDownloadThresholdBytes() int64 {
	return c.Probe.fullThresholdBytes
}

// RequestTimeout returns the per-request timeout for window fetches.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Probe.RequestTimeout) * time.Second
}

// ResolveTimeout returns the timeout for range resolution requests.
func (c *Config) ResolveTimeout() time.Duration {
	return time.Duration(c.Probe.ResolveTimeout) * time.Second
}

// RetryDelay returns the base delay between fetch retry attempts.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Probe.RetryDelay) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
