package mediainfo

import "strings"

// IsSufficient reports whether raw contains a recognizable Audio or Video
// section marker.
//
// The check is intentionally permissive: a garbled or truncated report
// still counts as long as one marker line survives, because containers
// vary widely in where their metadata atoms live. A marker is a line that
// reads "Audio", "Video", or the numbered "Audio #1" form with nothing
// else on it; key lines such as "Audio Format List : AAC" do not qualify.
func IsSufficient(raw string) bool {
	for _, line := range strings.Split(raw, "\n") {
		if isSectionMarker(strings.TrimSpace(line), "Audio") || isSectionMarker(strings.TrimSpace(line), "Video") {
			return true
		}
	}
	return false
}

func isSectionMarker(line, section string) bool {
	if line == section {
		return true
	}
	if !strings.HasPrefix(line, section+" #") {
		return false
	}
	return !strings.Contains(line, ":")
}
