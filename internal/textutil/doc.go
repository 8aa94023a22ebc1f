// Package textutil provides text processing utilities for token
// sanitization and byte formatting.
//
// The primary use cases are:
//   - Turning object names derived from URLs into filesystem-safe tokens
//   - Formatting byte counts for human-readable CLI output
package textutil
