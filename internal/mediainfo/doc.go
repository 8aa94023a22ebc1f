// Package mediainfo wraps the external media inspection tool and parses
// its text reports.
//
// This package has no mediapeek-specific dependencies beyond logging and
// error wrapping, and could be extracted as a standalone library.
//
// Key types:
//   - Invoker: runs the inspection binary against a local file
//   - AudioTrack: one normalized audio stream (channels, bitrate, language, codec)
//   - Section: one heading-delimited group of report lines
//
// Primary entry points:
//   - Invoker.Inspect: executes the tool and returns its combined output
//   - IsSufficient: reports whether a raw report contains usable sections
//   - ParseTracks: extracts ordered, normalized audio tracks from a report
//   - Sections: groups report lines under their section headings
//
// The channel, codec, and bitrate heuristics are deliberately loose string
// matching: they encode real-world quirks of media tooling output and are
// kept behind pure functions so the lookup tables can grow without
// touching control flow.
package mediainfo
