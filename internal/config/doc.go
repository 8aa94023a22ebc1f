// Package config loads, normalizes, and validates mediapeek configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), parses human byte-size strings for the probe budgets, reads TOML
// files, and honours environment fallbacks such as MEDIAPEEK_MEDIAINFO. The
// Config type centralizes every knob the engine and CLI need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, parsed budgets, canonical log formats, and clear validation
// errors.
package config
