package probe

import (
	"errors"
	"strings"

	"mediapeek/internal/mediainfo"
)

// ErrNoMetadata reports that no strategy ever wrote a byte, leaving
// nothing to show the caller.
var ErrNoMetadata = errors.New("could not read metadata")

// Outcome is the final result of one probe session. Raw holds the winning
// report verbatim; Tracks and Sections are parsed from it. SizeBytes is
// the origin-reported object size when known, otherwise the bytes the
// winning window actually holds.
type Outcome struct {
	SizeBytes int64
	Tracks    []mediainfo.AudioTrack
	Sections  []mediainfo.Section
	Strategy  Strategy
	Raw       string
}

// OriginalLanguage returns the first audio track's language, the
// conventional original language for the whole object.
func (o Outcome) OriginalLanguage() string {
	return mediainfo.OriginalLanguage(o.Tracks)
}

func buildOutcome(raw string, strategy Strategy, size int64) Outcome {
	outcome := Outcome{SizeBytes: size, Strategy: strategy, Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return outcome
	}
	outcome.Tracks = mediainfo.ParseTracks(raw)
	// The trailing newline is a line terminator, not a report line; trimming
	// it keeps the last section free of a phantom blank.
	outcome.Sections = mediainfo.Sections(strings.TrimSuffix(raw, "\n"))
	return outcome
}
