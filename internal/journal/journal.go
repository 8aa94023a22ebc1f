package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"mediapeek/internal/mediainfo"
)

// Entry is one recorded probe outcome.
type Entry struct {
	ID          int64                  `json:"id"`
	Source      string                 `json:"source"`
	DisplayName string                 `json:"display_name,omitempty"`
	SizeBytes   int64                  `json:"size_bytes"`
	Strategy    string                 `json:"strategy"`
	Tracks      []mediainfo.AudioTrack `json:"tracks,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// Store manages probe history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the journal database location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a probe outcome summary and returns the stored entry.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	tracksJSON := ""
	if len(entry.Tracks) > 0 {
		payload, err := json.Marshal(entry.Tracks)
		if err != nil {
			return nil, fmt.Errorf("marshal tracks: %w", err)
		}
		tracksJSON = string(payload)
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO probe_history (
            source, display_name, size_bytes, strategy, tracks_json, created_at
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Source,
		nullableString(entry.DisplayName),
		entry.SizeBytes,
		entry.Strategy,
		nullableString(tracksJSON),
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches a history entry by identifier. Missing entries yield
// nil without an error.
func (s *Store) GetByID(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM probe_history WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get history entry: %w", err)
	}
	return entry, nil
}

// List returns history entries newest first. A positive limit caps the
// result; zero or negative returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM probe_history ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear removes all history entries.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, `DELETE FROM probe_history`)
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

const entryColumns = "id, source, display_name, size_bytes, strategy, tracks_json, created_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id          int64
		source      string
		displayName sql.NullString
		sizeBytes   int64
		strategy    string
		tracksJSON  sql.NullString
		createdRaw  string
	)

	if err := scanner.Scan(&id, &source, &displayName, &sizeBytes, &strategy, &tracksJSON, &createdRaw); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:          id,
		Source:      source,
		DisplayName: displayName.String,
		SizeBytes:   sizeBytes,
		Strategy:    strategy,
	}
	if tracksJSON.Valid && tracksJSON.String != "" {
		if err := json.Unmarshal([]byte(tracksJSON.String), &entry.Tracks); err != nil {
			return nil, fmt.Errorf("unmarshal tracks: %w", err)
		}
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = created
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}
