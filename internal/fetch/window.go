package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"mediapeek/internal/logging"
	"mediapeek/internal/services"
)

// DownloadError reports a window fetch that failed after all retry attempts.
// It unwraps to a services marker so callers can classify the failure.
type DownloadError struct {
	URL      string
	Status   int
	Attempts int
	Err      error
}

func (e *DownloadError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("download failed: %s: status %d after %d attempt(s): %v", e.URL, e.Status, e.Attempts, e.Err)
	}
	return fmt.Sprintf("download failed: %s: after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// FetchWindow downloads the inclusive byte range [start, end] into dest and
// returns the bytes written. The write is hard-capped at the window budget
// (end-start+1) even when the origin ignores the Range header and streams the
// whole object. Transient failures are retried with linear backoff; the
// returned error is a *DownloadError once all attempts are spent.
func (c *Client) FetchWindow(ctx context.Context, rawURL string, start, end int64, dest string) (int64, error) {
	if start < 0 || end < start {
		return 0, services.Wrap(services.ErrValidation, "fetch", "window",
			fmt.Sprintf("invalid byte range %d-%d", start, end), nil)
	}
	budget := end - start + 1
	rangeHeader := fmt.Sprintf("bytes=%d-%d", start, end)
	return c.download(ctx, rawURL, rangeHeader, budget, dest)
}

// FetchFull downloads a small object in one plain GET, still capped at limit
// bytes as a safety net against undersized threshold configuration.
func (c *Client) FetchFull(ctx context.Context, rawURL string, dest string, limit int64) (int64, error) {
	if limit <= 0 {
		return 0, services.Wrap(services.ErrValidation, "fetch", "full",
			fmt.Sprintf("invalid byte limit %d", limit), nil)
	}
	return c.download(ctx, rawURL, "", limit, dest)
}

func (c *Client) download(ctx context.Context, rawURL, rangeHeader string, budget int64, dest string) (int64, error) {
	var (
		lastErr      error
		lastStatus   int
		attemptsMade int
	)

	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		attemptsMade = attempt
		written, status, err := c.downloadOnce(ctx, rawURL, rangeHeader, budget, dest)
		if err == nil {
			c.logger.Debug("window fetch complete",
				logging.String(logging.FieldURL, rawURL),
				logging.String("range", rangeHeader),
				logging.Int64(logging.FieldBytes, written),
				logging.Int(logging.FieldAttempt, attempt))
			return written, nil
		}

		lastErr = err
		lastStatus = status
		removeQuietly(dest)

		if ctx.Err() != nil {
			break
		}
		if !services.Retryable(err) {
			break
		}
		if attempt == c.retryAttempts {
			break
		}

		delay := c.retryDelay * time.Duration(attempt)
		c.logger.Warn("window fetch failed, retrying",
			logging.String(logging.FieldURL, rawURL),
			logging.String("range", rangeHeader),
			logging.Int(logging.FieldAttempt, attempt),
			logging.Duration("delay", delay),
			logging.Error(err))
		select {
		case <-ctx.Done():
			lastErr = wrapContextErr(ctx.Err())
		case <-time.After(delay):
			continue
		}
		break
	}

	return 0, &DownloadError{URL: rawURL, Status: lastStatus, Attempts: attemptsMade, Err: lastErr}
}

// downloadOnce performs a single fetch attempt. The status return is zero
// for connection-level failures.
func (c *Client) downloadOnce(ctx context.Context, rawURL, rangeHeader string, budget int64, dest string) (int64, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, 0, services.Wrap(services.ErrValidation, "fetch", "request", "build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, wrapTransportErr(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusPartialContent:
	default:
		marker := classifyStatus(resp.StatusCode)
		return 0, resp.StatusCode, services.Wrap(marker, "fetch", "response",
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, resp.StatusCode, services.Wrap(services.ErrConfiguration, "fetch", "window", "create window file", err)
	}

	// The cap protects disk and memory when the origin ignores Range and
	// streams past the requested window.
	written, copyErr := io.Copy(out, io.LimitReader(resp.Body, budget))
	closeErr := out.Close()

	if copyErr != nil {
		return written, resp.StatusCode, wrapTransportErr(copyErr)
	}
	if closeErr != nil {
		return written, resp.StatusCode, services.Wrap(services.ErrConfiguration, "fetch", "window", "close window file", closeErr)
	}
	return written, resp.StatusCode, nil
}

func classifyStatus(status int) error {
	switch {
	case status == http.StatusNotFound, status == http.StatusGone:
		return services.ErrNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return services.ErrValidation
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return services.ErrTransient
	case status >= 500:
		return services.ErrTransient
	default:
		return services.ErrValidation
	}
}

func wrapTransportErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return services.Wrap(services.ErrTimeout, "fetch", "transfer", "request deadline exceeded", err)
	case errors.Is(err, context.Canceled):
		return services.Wrap(services.ErrTransient, "fetch", "transfer", "request canceled", err)
	default:
		if timeoutErr, ok := err.(interface{ Timeout() bool }); ok && timeoutErr.Timeout() {
			return services.Wrap(services.ErrTimeout, "fetch", "transfer", "request timed out", err)
		}
		return services.Wrap(services.ErrTransient, "fetch", "transfer", "request failed", err)
	}
}

func wrapContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, "fetch", "transfer", "deadline exceeded during backoff", err)
	}
	return services.Wrap(services.ErrTransient, "fetch", "transfer", "canceled during backoff", err)
}

func removeQuietly(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
