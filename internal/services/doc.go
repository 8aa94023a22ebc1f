// Package services defines shared utilities consumed by the probe engine and
// its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp session IDs, probe stage names, and source
//     identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures
//     (transient vs permanent) for the fetch retry policy and the CLI.
//
// Use these helpers when wiring new engine logic so operational behaviour
// (error handling, observability, retries) stays uniform across the pipeline.
package services
