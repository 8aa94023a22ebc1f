// Package fetch discovers remote object metadata and downloads bounded byte
// windows.
//
// The Client issues HEAD-with-GET-fallback range resolution, windowed
// downloads with a hard byte-budget cap, and full downloads for small
// objects. Range resolution never fails a probe session; window fetches
// surface typed DownloadError values and retry transient failures with
// backoff before giving up, leaving strategy decisions to the caller.
package fetch
