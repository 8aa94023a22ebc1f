package mediainfo

import (
	"regexp"
	"strings"
)

// AudioTrack is one normalized audio stream from an inspection report.
// Index follows stream order and starts at 1; the first track's Language,
// when present, is taken as the object's original audio language.
type AudioTrack struct {
	Index    int    `json:"index"`
	Channels string `json:"channels"`
	Bitrate  string `json:"bitrate,omitempty"`
	Language string `json:"language,omitempty"`
	Codec    string `json:"codec"`
}

// bitratePattern matches a number (possibly with thousands spacing) followed
// by a recognized rate unit. The inspection tool writes "1 509 kb/s".
var bitratePattern = regexp.MustCompile(`(?i)([0-9][0-9 .]*)\s*(kb/s|kbps|Mb/s|mb/s|bits/s)`)

// ParseTracks extracts the ordered audio tracks from a raw inspection
// report. Blocks are blank-line delimited; a block is an audio track iff
// it carries a "Channel(s)" field. Malformed blocks are skipped, never
// fatal, and an input with no audio blocks yields an empty result.
func ParseTracks(raw string) []AudioTrack {
	var tracks []AudioTrack
	for _, block := range strings.Split(raw, "\n\n") {
		fields := parseBlockFields(block)
		channels, ok := fieldValue(fields, "Channel(s)")
		if !ok {
			continue
		}

		bitrate := ""
		for _, field := range fields {
			key := strings.ToLower(field.key)
			if !strings.Contains(key, "bit rate") && !strings.Contains(key, "bitrate") {
				continue
			}
			if candidate := ExtractBitrate(field.value); candidate != "" {
				bitrate = candidate
				break
			}
		}
		if bitrate == "" {
			// Some muxers bury the rate in an unrelated field; scan the
			// whole block text as a last resort.
			bitrate = ExtractBitrate(block)
		}

		name, ok := fieldValue(fields, "Commercial name")
		if !ok || name == "" {
			name, _ = fieldValue(fields, "Format")
		}
		codec := MapCodec(name)
		normalized := NormalizeChannels(channels)
		if bitrate == "" {
			bitrate = InferBitrate(codec, normalized)
		}

		language, _ := fieldValue(fields, "Language")
		tracks = append(tracks, AudioTrack{
			Index:    len(tracks) + 1,
			Channels: normalized,
			Bitrate:  bitrate,
			Language: language,
			Codec:    codec,
		})
	}
	return tracks
}

// OriginalLanguage returns the first track's language, the conventional
// original audio language for the whole object. Empty when no track
// declares one.
func OriginalLanguage(tracks []AudioTrack) string {
	if len(tracks) == 0 {
		return ""
	}
	return tracks[0].Language
}

// NormalizeChannels maps a raw channel count onto its layout label:
// "2" to "2.0", "6" to "5.1", "8" to "7.1". Any other value passes
// through unchanged after stripping a " channels" suffix.
func NormalizeChannels(raw string) string {
	raw = strings.ReplaceAll(raw, " channels", "")
	switch raw {
	case "2":
		return "2.0"
	case "6":
		return "5.1"
	case "8":
		return "7.1"
	}
	return raw
}

// MapCodec maps a raw format or commercial name onto a short codec label.
// The substring checks mirror how commercial names appear in the wild;
// unrecognized names pass through trimmed.
func MapCodec(raw string) string {
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "atmos"):
		return "DDPA"
	case strings.Contains(lower, "dolby digital plus"),
		strings.Contains(lower, "e-ac-3"),
		strings.Contains(lower, "dd+"):
		return "DDP"
	case strings.Contains(lower, "ac-3"),
		strings.Contains(lower, "dolby digital"):
		return "DD"
	case strings.Contains(lower, "aac"):
		return "AAC"
	}
	return strings.TrimSpace(raw)
}

// ExtractBitrate returns the last bitrate-looking token in s, normalized
// to a spaceless number and a lowercase unit with "kbps" rewritten to
// "kb/s". Empty when s contains no recognizable rate.
func ExtractBitrate(s string) string {
	matches := bitratePattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return ""
	}
	last := matches[len(matches)-1]
	number := strings.ReplaceAll(last[1], " ", "")
	unit := strings.ReplaceAll(strings.ToLower(last[2]), "kbps", "kb/s")
	return number + unit
}

// InferBitrate fills in a bitrate for codec and channel combinations with
// well-known defaults. Combinations outside the table return "" rather
// than a fabricated value.
func InferBitrate(codec, channels string) string {
	upper := strings.ToUpper(codec)
	switch {
	case strings.Contains(upper, "HE-AAC"), strings.Contains(upper, "HE AAC"):
		switch channels {
		case "2.0":
			return "96kb/s"
		case "5.1":
			return "192kb/s"
		case "7.1":
			return "256kb/s"
		}
	case strings.Contains(upper, "AAC"):
		switch channels {
		case "2.0":
			return "128kb/s"
		case "5.1":
			return "320kb/s"
		case "7.1":
			return "448kb/s"
		}
	case strings.Contains(upper, "DDPA"), strings.Contains(upper, "ATMOS"):
		return "768kb/s"
	case strings.Contains(upper, "DDP"),
		strings.Contains(upper, "E-AC-3"),
		strings.Contains(upper, "DD+"):
		if channels == "5.1" {
			return "640kb/s"
		}
	}
	return ""
}

type blockField struct {
	key   string
	value string
}

func parseBlockFields(block string) []blockField {
	var fields []blockField
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields = append(fields, blockField{
			key:   strings.TrimSpace(key),
			value: strings.TrimSpace(value),
		})
	}
	return fields
}

// fieldValue returns the last occurrence of key, matching how repeated
// keys overwrite earlier ones in the report.
func fieldValue(fields []blockField, key string) (string, bool) {
	value, found := "", false
	for _, field := range fields {
		if field.key == key {
			value, found = field.value, true
		}
	}
	return value, found
}
