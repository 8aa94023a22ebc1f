// Package main hosts the mediapeek CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into probe
// sessions, journal queries, scratch-space maintenance, and configuration
// scaffolding. It centralizes configuration resolution and logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: extend the internal packages first, then surface
// new behavior through dedicated commands or flags here.
package main
