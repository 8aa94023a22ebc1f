package source_test

import (
	"testing"

	"mediapeek/internal/source"
)

func TestFromURL(t *testing.T) {
	loc, err := source.FromURL("https://cdn.example.com/media/Some%20Movie.mkv?token=abc")
	if err != nil {
		t.Fatalf("FromURL returned error: %v", err)
	}
	if !loc.IsRemote() {
		t.Fatal("expected remote locator")
	}
	if loc.Name() != "Some Movie.mkv" {
		t.Fatalf("name = %q, want %q", loc.Name(), "Some Movie.mkv")
	}
	if loc.Path() != "" {
		t.Fatalf("expected empty path, got %q", loc.Path())
	}
}

func TestFromURLRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "ftp://example.com/file", "https://", "not a url"} {
		if _, err := source.FromURL(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestFromURLFallsBackToHost(t *testing.T) {
	loc, err := source.FromURL("https://cdn.example.com/")
	if err != nil {
		t.Fatalf("FromURL returned error: %v", err)
	}
	if loc.Name() != "cdn.example.com" {
		t.Fatalf("name = %q, want host fallback", loc.Name())
	}
}

func TestFromFile(t *testing.T) {
	loc, err := source.FromFile("/data/incoming/movie.mkv")
	if err != nil {
		t.Fatalf("FromFile returned error: %v", err)
	}
	if loc.IsRemote() {
		t.Fatal("expected local locator")
	}
	if loc.Name() != "movie.mkv" {
		t.Fatalf("name = %q", loc.Name())
	}
	if loc.Kind() != source.KindLocal {
		t.Fatalf("kind = %v", loc.Kind())
	}
}

func TestDetect(t *testing.T) {
	remote, err := source.Detect("HTTPS://cdn.example.com/file.mkv")
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if !remote.IsRemote() {
		t.Fatal("expected remote locator for https argument")
	}

	local, err := source.Detect("./file.mkv")
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if local.IsRemote() {
		t.Fatal("expected local locator for path argument")
	}
}
