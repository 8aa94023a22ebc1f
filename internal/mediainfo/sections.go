package mediainfo

import "strings"

// sectionLabels lists the heading families the inspection tool emits, in
// the order it emits them.
var sectionLabels = []string{"General", "Video", "Audio", "Text", "Menu"}

// Section is one heading-delimited group of report lines. Label is the
// heading family ("Audio" for an "Audio #2" heading); a Section with an
// empty Label holds any preamble lines before the first heading.
type Section struct {
	Label string
	Name  string
	Lines []string
}

// Sections groups report lines under their section headings in source
// order. Blank separator lines stay attached to the preceding section so
// the report text can be reassembled verbatim.
func Sections(raw string) []Section {
	var sections []Section
	for _, line := range strings.Split(raw, "\n") {
		if label, ok := headingLabel(line); ok {
			sections = append(sections, Section{
				Label: label,
				Name:  strings.TrimRight(line, " \r"),
			})
			continue
		}
		if len(sections) == 0 {
			sections = append(sections, Section{})
		}
		last := len(sections) - 1
		sections[last].Lines = append(sections[last].Lines, line)
	}
	return sections
}

// headingLabel matches a line against the known heading families. The
// tool prints headings at column zero, so a simple prefix check keeps
// numbered variants like "Audio #2" in the right family.
func headingLabel(line string) (string, bool) {
	for _, label := range sectionLabels {
		if strings.HasPrefix(line, label) {
			return label, true
		}
	}
	return "", false
}
