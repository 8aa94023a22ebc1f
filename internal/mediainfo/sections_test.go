package mediainfo_test

import (
	"strings"
	"testing"

	"mediapeek/internal/mediainfo"
)

func TestSectionsGroupsByHeading(t *testing.T) {
	sections := mediainfo.Sections(sampleReport)

	var labels, names []string
	for _, section := range sections {
		labels = append(labels, section.Label)
		names = append(names, section.Name)
	}
	wantLabels := []string{"General", "Video", "Audio", "Audio", "Text", "Menu"}
	wantNames := []string{"General", "Video", "Audio #1", "Audio #2", "Text #1", "Menu"}
	if strings.Join(labels, ",") != strings.Join(wantLabels, ",") {
		t.Fatalf("labels = %v, want %v", labels, wantLabels)
	}
	if strings.Join(names, ",") != strings.Join(wantNames, ",") {
		t.Fatalf("names = %v, want %v", names, wantNames)
	}

	general := sections[0]
	if len(general.Lines) == 0 || !strings.HasPrefix(general.Lines[0], "Unique ID") {
		t.Fatalf("general lines miss content: %v", general.Lines)
	}
	// Separator blank lines stay with the preceding section.
	if last := general.Lines[len(general.Lines)-1]; last != "" {
		t.Fatalf("expected trailing blank line in general section, got %q", last)
	}
}

func TestSectionsReassemblesVerbatim(t *testing.T) {
	var lines []string
	for _, section := range mediainfo.Sections(sampleReport) {
		if section.Name != "" {
			lines = append(lines, section.Name)
		}
		lines = append(lines, section.Lines...)
	}
	if got := strings.Join(lines, "\n"); got != sampleReport {
		t.Fatalf("reassembled report differs from input:\n%q\nvs\n%q", got, sampleReport)
	}
}

func TestSectionsKeepsPreamble(t *testing.T) {
	sections := mediainfo.Sections("stray diagnostics\nGeneral\nFormat : Matroska\n")
	if len(sections) != 2 {
		t.Fatalf("expected preamble + general, got %d sections", len(sections))
	}
	if sections[0].Label != "" || sections[0].Name != "" {
		t.Fatalf("first section should be unnamed preamble, got %+v", sections[0])
	}
	if sections[0].Lines[0] != "stray diagnostics" {
		t.Fatalf("preamble lines = %v", sections[0].Lines)
	}
	if sections[1].Label != "General" {
		t.Fatalf("second section label = %q", sections[1].Label)
	}
}

func TestSectionsEmptyInput(t *testing.T) {
	sections := mediainfo.Sections("")
	if len(sections) != 1 || sections[0].Label != "" {
		t.Fatalf("expected single empty preamble section, got %+v", sections)
	}
}
