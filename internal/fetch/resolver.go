package fetch

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"mediapeek/internal/logging"
)

// RangeInfo describes what the origin advertises about a remote object.
// A ContentLength of zero means the size is unknown.
type RangeInfo struct {
	ContentLength int64
	AcceptsRanges bool
}

// SizeKnown reports whether the origin exposed a usable object size.
func (r RangeInfo) SizeKnown() bool { return r.ContentLength > 0 }

// Resolve discovers the total size and range support for a remote object.
// It tries HEAD first and falls back to a GET whose body is closed without
// being consumed. Resolution never fails the probe session: any error
// degrades to RangeInfo{0, false} so callers fall back to header-only
// probing. Retries belong to the window fetch layer, not here.
func (c *Client) Resolve(ctx context.Context, rawURL string) RangeInfo {
	resolveCtx, cancel := context.WithTimeout(ctx, c.resolveTimeout)
	defer cancel()

	if info, ok := c.resolveWith(resolveCtx, http.MethodHead, rawURL); ok {
		return info
	}
	if info, ok := c.resolveWith(resolveCtx, http.MethodGet, rawURL); ok {
		return info
	}
	c.logger.Debug("range resolution failed, degrading to header-only",
		logging.String(logging.FieldURL, rawURL))
	return RangeInfo{}
}

func (c *Client) resolveWith(ctx context.Context, method, rawURL string) (RangeInfo, bool) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return RangeInfo{}, false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("range resolution request failed",
			logging.String("method", method),
			logging.String(logging.FieldURL, rawURL),
			logging.Error(err))
		return RangeInfo{}, false
	}
	// Headers are all we need; drop the body unread.
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("range resolution rejected",
			logging.String("method", method),
			logging.Int("status", resp.StatusCode),
			logging.String(logging.FieldURL, rawURL))
		return RangeInfo{}, false
	}

	info := RangeInfo{
		ContentLength: headerContentLength(resp),
		AcceptsRanges: strings.Contains(strings.ToLower(resp.Header.Get("Accept-Ranges")), "bytes"),
	}
	return info, true
}

func headerContentLength(resp *http.Response) int64 {
	if resp.ContentLength > 0 {
		return resp.ContentLength
	}
	raw := strings.TrimSpace(resp.Header.Get("Content-Length"))
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
