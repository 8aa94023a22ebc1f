package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	content := []byte("hello world")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestConcat(t *testing.T) {
	dir := t.TempDir()
	head := filepath.Join(dir, "head.bin")
	tail := filepath.Join(dir, "tail.bin")
	dst := filepath.Join(dir, "joined.bin")

	if err := os.WriteFile(head, []byte("HEADBYTES"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tail, []byte("TAILBYTES"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Concat(dst, head, tail)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len("HEADBYTESTAILBYTES")) {
		t.Fatalf("bytes written = %d, want %d", n, len("HEADBYTESTAILBYTES"))
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "HEADBYTESTAILBYTES" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestConcat_MissingSourceRemovesPartial(t *testing.T) {
	dir := t.TempDir()
	head := filepath.Join(dir, "head.bin")
	dst := filepath.Join(dir, "joined.bin")

	if err := os.WriteFile(head, []byte("HEAD"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Concat(dst, head, filepath.Join(dir, "missing.bin")); err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("expected partial dst to be removed, stat err = %v", err)
	}
}
