package source

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Kind identifies where a probed object's bytes live.
type Kind int

const (
	// KindRemote is an HTTP(S) object fetched in bounded windows.
	KindRemote Kind = iota
	// KindLocal is a file already present on disk, probed in place.
	KindLocal
)

// Locator identifies one probe target. Immutable once created.
type Locator struct {
	kind Kind
	url  string
	path string
	name string
}

// FromURL builds a remote locator. Only http and https schemes are accepted.
func FromURL(raw string) (Locator, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Locator{}, errors.New("url must not be empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return Locator{}, fmt.Errorf("parse url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return Locator{}, fmt.Errorf("unsupported url scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return Locator{}, errors.New("url must include a host")
	}
	return Locator{kind: KindRemote, url: trimmed, name: remoteName(parsed)}, nil
}

// FromFile builds a local locator from a filesystem path.
func FromFile(p string) (Locator, error) {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		return Locator{}, errors.New("path must not be empty")
	}
	cleaned := filepath.Clean(trimmed)
	return Locator{kind: KindLocal, path: cleaned, name: filepath.Base(cleaned)}, nil
}

// Detect builds a locator from a CLI argument, treating anything with an
// http(s) scheme as remote and everything else as a local path.
func Detect(arg string) (Locator, error) {
	trimmed := strings.TrimSpace(arg)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return FromURL(trimmed)
	}
	return FromFile(trimmed)
}

// Kind returns the locator kind.
func (l Locator) Kind() Kind { return l.kind }

// IsRemote reports whether the locator points at an HTTP(S) object.
func (l Locator) IsRemote() bool { return l.kind == KindRemote }

// URL returns the remote URL, empty for local locators.
func (l Locator) URL() string { return l.url }

// Path returns the local path, empty for remote locators.
func (l Locator) Path() string { return l.path }

// Name returns the display name derived from the URL path or file base name.
func (l Locator) Name() string { return l.name }

// remoteName derives a display name from the final URL path segment,
// unescaping percent encoding. Falls back to the host when the path has no
// usable segment.
func remoteName(u *url.URL) string {
	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return u.Host
	}
	if unescaped, err := url.PathUnescape(base); err == nil && unescaped != "" {
		return unescaped
	}
	return base
}
