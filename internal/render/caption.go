package render

import (
	"fmt"
	"strings"

	"mediapeek/internal/mediainfo"
)

// AudioCaption renders the numbered audio summary, one bold line per
// track. Empty for a report without audio tracks.
func AudioCaption(tracks []mediainfo.AudioTrack) string {
	if len(tracks) == 0 {
		return ""
	}
	lines := []string{"🎧 <b>Audio:</b>"}
	for _, track := range tracks {
		line := fmt.Sprintf("%d. %s ", track.Index, track.Language)
		if track.Codec != "" {
			line += fmt.Sprintf("| %s ", track.Codec)
		}
		if track.Channels != "" {
			line += track.Channels + " "
		}
		if track.Bitrate != "" {
			line += "@ " + track.Bitrate
		}
		lines = append(lines, "<b>"+strings.TrimSpace(line)+"</b>")
	}
	return strings.Join(lines, "\n")
}

// AudioBlockquote renders the compact track list wrapped in a blockquote,
// one "CODEC | CHANNELS | BITRATE | LANGUAGE" row per track with absent
// fields elided.
func AudioBlockquote(tracks []mediainfo.AudioTrack) string {
	if len(tracks) == 0 {
		return ""
	}
	rows := make([]string, 0, len(tracks))
	for _, track := range tracks {
		bitrate := strings.ReplaceAll(track.Bitrate, "kb/s", " kb/s")
		bitrate = strings.ReplaceAll(bitrate, "Kb/s", " kb/s")
		var parts []string
		for _, part := range []string{track.Codec, track.Channels, bitrate, track.Language} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		rows = append(rows, strings.Join(parts, " | "))
	}
	return "🔈 <b>Audio Tracks:</b>\n<b><blockquote>" + strings.Join(rows, "\n") + "</blockquote></b>"
}
