package render

import (
	"fmt"
	"html"
	"strings"

	"mediapeek/internal/mediainfo"
	"mediapeek/internal/probe"
)

// DefaultChunkLimit matches the display transport's per-message budget.
const DefaultChunkLimit = 3500

// sectionEmoji decorates each report section heading. "Text" sections are
// relabeled "Subtitle" for display.
var sectionEmoji = map[string]string{
	"General": "🗒",
	"Video":   "🎞",
	"Audio":   "🔊",
	"Text":    "🔠",
	"Menu":    "🗃",
}

// Report renders the outcome as HTML display chunks no longer than limit.
func Report(outcome probe.Outcome, name string, limit int) []string {
	return Chunk(HTML(outcome, name), limit)
}

// HTML renders the full report: an escaped title header, one emoji
// heading per detected section, and the section lines escaped inside
// preformatted blocks. The tool's own "File size" line is overwritten
// with the computed size in MiB. Lines before the first heading render
// bare, outside any preformatted block.
func HTML(outcome probe.Outcome, name string) string {
	var b strings.Builder
	b.WriteString("<h4>📌 ")
	b.WriteString(html.EscapeString(name))
	b.WriteString("</h4><br><br>")

	if strings.TrimSpace(outcome.Raw) == "" {
		b.WriteString("<i>No MediaInfo output.</i>")
		return b.String()
	}

	sizeLine := fmt.Sprintf("File size                                 : %.2f MiB",
		float64(outcome.SizeBytes)/(1024*1024))

	sections := outcome.Sections
	if sections == nil {
		sections = mediainfo.Sections(strings.TrimSuffix(outcome.Raw, "\n"))
	}
	for _, section := range sections {
		if section.Label != "" {
			b.WriteString("<h4>")
			b.WriteString(sectionEmoji[section.Label])
			b.WriteString(" ")
			b.WriteString(html.EscapeString(strings.ReplaceAll(section.Name, "Text", "Subtitle")))
			b.WriteString("</h4><br><pre>")
		}
		for _, line := range section.Lines {
			if strings.HasPrefix(line, "File size") {
				line = sizeLine
			}
			b.WriteString(html.EscapeString(line))
			b.WriteString("\n")
		}
		if section.Label != "" {
			b.WriteString("</pre><br>")
		}
	}
	return b.String()
}
