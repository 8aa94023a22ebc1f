// Package source identifies probe targets.
//
// A Locator points at either a remote HTTP(S) object or a local file and
// carries the display name used in reports and logs. Locators are immutable;
// all size and reachability discovery happens later in the probe session.
package source
