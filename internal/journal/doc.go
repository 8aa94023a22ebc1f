// Package journal persists probe outcome summaries in SQLite for the
// history command.
//
// The Store keeps one row per completed probe: source, display name,
// object size, winning strategy, and the parsed audio tracks as JSON.
// Raw byte windows and report text are never written. The database is a
// convenience log, not engine state; probing works with the journal
// disabled.
//
// Schema changes bump the version in schema.go; the database is rebuilt
// by deleting the file.
package journal
