package workdir

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mediapeek/internal/logging"
	"mediapeek/internal/services"
	"mediapeek/internal/textutil"
)

// ErrBusy reports that the workspace lock is held, either by a running
// purge or by active probe sessions.
var ErrBusy = errors.New("workspace is in use")

// Manager owns the workspace layout rooted at a single directory.
// Sessions live under <root>/sessions; the lock file guarding purges
// lives at <root>/workspace.lock.
type Manager struct {
	root   string
	logger *slog.Logger
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger attaches a logger for sweep and purge diagnostics. The
// logger is used as given so callers keep their own component attrs.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager builds a Manager rooted at root.
func NewManager(root string, opts ...Option) *Manager {
	manager := &Manager{
		root:   root,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(manager)
	}
	return manager
}

// Root returns the workspace root directory.
func (m *Manager) Root() string {
	return m.root
}

// SessionsDir returns the directory holding per-session scratch dirs.
func (m *Manager) SessionsDir() string {
	return filepath.Join(m.root, "sessions")
}

// LockPath returns the path to the workspace lock file.
func (m *Manager) LockPath() string {
	return filepath.Join(m.root, "workspace.lock")
}

// Session is one probe's scratch directory. Windows written under it are
// removed together by Sweep. Each session holds a shared lock on the
// workspace so a purge cannot delete windows out from under it.
type Session struct {
	id     string
	dir    string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewSession creates a fresh scratch directory and takes the shared
// workspace lock. It fails while a purge holds the exclusive lock. The
// label, usually the probed object's name, becomes a directory prefix so
// leftover scratch dirs identify the probe that made them.
func (m *Manager) NewSession(label string) (*Session, error) {
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workspace", "session", "create workspace root", err)
	}

	lock := flock.New(m.LockPath())
	held, err := lock.TryRLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workspace", "lock", "acquire session lock", err)
	}
	if !held {
		return nil, services.Wrap(services.ErrTransient, "workspace", "lock", "scratch purge in progress", ErrBusy)
	}

	id := uuid.NewString()
	dir := filepath.Join(m.SessionsDir(), sessionDirName(label, id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrConfiguration, "workspace", "session", "create scratch directory", err)
	}
	return &Session{id: id, dir: dir, lock: lock, logger: m.logger}, nil
}

// sessionDirName joins a sanitized label token with the session UUID. The
// token is capped so URL-derived names cannot produce unwieldy paths.
func sessionDirName(label, id string) string {
	if strings.TrimSpace(label) == "" {
		return id
	}
	token := textutil.SanitizeToken(label)
	if len(token) > 32 {
		token = strings.Trim(token[:32], "_-")
	}
	return token + "-" + id
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Dir returns the session scratch directory.
func (s *Session) Dir() string {
	return s.dir
}

// Path returns the path for a named window inside the session directory.
func (s *Session) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Sweep removes the session directory with every window in it and
// releases the shared workspace lock. Safe to call exactly once, usually
// deferred right after NewSession.
func (s *Session) Sweep() {
	if err := os.RemoveAll(s.dir); err != nil {
		s.logger.Warn("scratch sweep failed",
			logging.String("dir", s.dir),
			logging.Error(err))
	}
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("workspace lock release failed", logging.Error(err))
	}
}

// Purge removes every session directory under the workspace and returns
// how many it removed. The exclusive workspace lock keeps it from racing
// active sessions or a second purge; a held lock yields ErrBusy.
func (m *Manager) Purge() (int, error) {
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return 0, services.Wrap(services.ErrConfiguration, "workspace", "purge", "create workspace root", err)
	}

	lock := flock.New(m.LockPath())
	held, err := lock.TryLock()
	if err != nil {
		return 0, services.Wrap(services.ErrConfiguration, "workspace", "lock", "acquire purge lock", err)
	}
	if !held {
		return 0, ErrBusy
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			m.logger.Warn("workspace lock release failed", logging.Error(err))
		}
	}()

	entries, err := os.ReadDir(m.SessionsDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, services.Wrap(services.ErrConfiguration, "workspace", "purge", "read sessions directory", err)
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(m.SessionsDir(), entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return removed, services.Wrap(services.ErrConfiguration, "workspace", "purge", fmt.Sprintf("remove %s", entry.Name()), err)
		}
		removed++
	}
	m.logger.Info("workspace purged", logging.Int("sessions_removed", removed))
	return removed, nil
}
