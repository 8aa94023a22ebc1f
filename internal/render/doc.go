// Package render formats probe outcomes for display.
//
// Key responsibilities:
//   - Render the full HTML report: escaped title, emoji section headings,
//     preformatted section bodies, computed file size
//   - Render the compact audio caption and blockquote track list
//   - Split long output into bounded display chunks whose concatenation
//     reproduces the unsplit text
//
// All functions are pure string transforms; nothing here performs I/O.
package render
