package services_test

import (
	"errors"
	"strings"
	"testing"

	"mediapeek/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "inspect", "mediainfo", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"inspect", "mediainfo", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker fallback, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestRetryableClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"validation", services.Wrap(services.ErrValidation, "header", "fetch", "bad range", nil), false},
		{"configuration", services.Wrap(services.ErrConfiguration, "resolve", "client", "missing url", nil), false},
		{"not found", services.Wrap(services.ErrNotFound, "header", "fetch", "gone", nil), false},
		{"timeout", services.Wrap(services.ErrTimeout, "tail", "fetch", "deadline", nil), true},
		{"transient", services.Wrap(services.ErrTransient, "tail", "fetch", "reset", errors.New("io")), true},
		{"unclassified", errors.New("socket closed"), true},
	}
	for _, tc := range cases {
		if got := services.Retryable(tc.err); got != tc.want {
			t.Fatalf("%s: Retryable = %v, want %v", tc.name, got, tc.want)
		}
	}
}
