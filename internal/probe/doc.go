// Package probe orchestrates metadata extraction for large media objects.
//
// A probe session resolves the origin's range capabilities, downloads
// bounded byte windows (header, tail, and their concatenation), runs the
// inspection tool against each window, and keeps the first report the
// classifier accepts. Escalation stops as soon as a report is sufficient
// or the origin cannot serve the next strategy.
//
// Key responsibilities:
//   - Sequence the header, tail, and concat strategies via a pure state
//     transition function
//   - Enforce byte budgets and the small-object full-download shortcut
//   - Guarantee every scratch window is swept before a session returns
//   - Assemble the final Outcome (size, tracks, sections, raw report)
//
// Sessions share no state: one Engine may serve concurrent callers.
package probe
