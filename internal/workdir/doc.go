// Package workdir owns the scratch workspace: per-probe session
// directories for byte windows, the sweep that removes them, and a
// flock-guarded purge for the clean command. Session directories carry a
// token derived from the probed object's name plus a UUID.
package workdir
