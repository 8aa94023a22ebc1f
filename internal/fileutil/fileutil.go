package fileutil

import (
	"fmt"
	"io"
	"os"
)

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Concat streams the source files into dst in order and returns the total
// bytes written. A missing or unreadable source aborts the write and removes
// the partial dst so callers never probe a half-built window.
func Concat(dst string, sources ...string) (int64, error) {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, src := range sources {
		in, err := os.Open(src)
		if err != nil {
			out.Close()
			_ = os.Remove(dst)
			return 0, fmt.Errorf("concat source %s: %w", src, err)
		}
		n, err := io.Copy(out, in)
		in.Close()
		total += n
		if err != nil {
			out.Close()
			_ = os.Remove(dst)
			return 0, fmt.Errorf("concat copy %s: %w", src, err)
		}
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return 0, err
	}
	return total, nil
}
