package render_test

import (
	"reflect"
	"strings"
	"testing"

	"mediapeek/internal/mediainfo"
	"mediapeek/internal/probe"
	"mediapeek/internal/render"
)

const htmlReport = `General
Complete name : Movie & Co's <Cut>.mkv
File size : 734003200 Bytes
Format : Matroska

Video
Width : 1 920 pixels

Audio #1
Channel(s) : 6 channels

Text #1
Language : English

Menu
00:00:00.000 : Chapter 1
`

func TestHTMLGolden(t *testing.T) {
	outcome := probe.Outcome{SizeBytes: 734003200, Raw: htmlReport}

	got := render.HTML(outcome, "Movie & Co's <Cut>.mkv")

	sizeLine := "File size" + strings.Repeat(" ", 33) + ": 700.00 MiB"
	want := "<h4>📌 Movie &amp; Co&#39;s &lt;Cut&gt;.mkv</h4><br><br>" +
		"<h4>🗒 General</h4><br><pre>" +
		"Complete name : Movie &amp; Co&#39;s &lt;Cut&gt;.mkv\n" +
		sizeLine + "\n" +
		"Format : Matroska\n" +
		"\n" +
		"</pre><br><h4>🎞 Video</h4><br><pre>" +
		"Width : 1 920 pixels\n" +
		"\n" +
		"</pre><br><h4>🔊 Audio #1</h4><br><pre>" +
		"Channel(s) : 6 channels\n" +
		"\n" +
		"</pre><br><h4>🔠 Subtitle #1</h4><br><pre>" +
		"Language : English\n" +
		"\n" +
		"</pre><br><h4>🗃 Menu</h4><br><pre>" +
		"00:00:00.000 : Chapter 1\n" +
		"</pre><br>"
	if got != want {
		t.Fatalf("unexpected html:\n got: %q\nwant: %q", got, want)
	}
}

func TestHTMLEmptyReport(t *testing.T) {
	outcome := probe.Outcome{SizeBytes: 1024, Raw: "   \n"}

	got := render.HTML(outcome, "sample.mkv")

	want := "<h4>📌 sample.mkv</h4><br><br><i>No MediaInfo output.</i>"
	if got != want {
		t.Fatalf("unexpected html: %q", got)
	}
}

func TestHTMLHonorsPrecomputedSections(t *testing.T) {
	bare := probe.Outcome{SizeBytes: 734003200, Raw: htmlReport}
	parsed := probe.Outcome{
		SizeBytes: 734003200,
		Raw:       htmlReport,
		Sections:  mediainfo.Sections(strings.TrimSuffix(htmlReport, "\n")),
	}

	if render.HTML(parsed, "movie.mkv") != render.HTML(bare, "movie.mkv") {
		t.Fatal("precomputed sections render differently from raw fallback")
	}
}

func TestReportChunksReassemble(t *testing.T) {
	outcome := probe.Outcome{SizeBytes: 734003200, Raw: htmlReport}

	chunks := render.Report(outcome, "movie.mkv", 200)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 200 {
			t.Fatalf("chunk %d exceeds limit: %d bytes", i, len(chunk))
		}
	}
	if joined := strings.Join(chunks, ""); joined != render.HTML(outcome, "movie.mkv") {
		t.Fatalf("chunks do not reassemble the document")
	}
}

func TestChunkPrefersLineBoundaries(t *testing.T) {
	chunks := render.Chunk("alpha\nbeta\ngamma\n", 10)

	want := []string{"alpha\n", "beta\n", "gamma\n"}
	if !reflect.DeepEqual(chunks, want) {
		t.Fatalf("unexpected chunks: %q", chunks)
	}
}

func TestChunkHardCutsUnbrokenText(t *testing.T) {
	limit := 512
	text := strings.Repeat("x", 3*limit+100)

	chunks := render.Chunk(text, limit)

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	for i := 0; i < 3; i++ {
		if len(chunks[i]) != limit {
			t.Fatalf("chunk %d has %d bytes, want %d", i, len(chunks[i]), limit)
		}
	}
	if len(chunks[3]) != 100 {
		t.Fatalf("final chunk has %d bytes, want 100", len(chunks[3]))
	}
	if strings.Join(chunks, "") != text {
		t.Fatalf("chunks do not reassemble the text")
	}
}

func TestChunkDefaultsLimit(t *testing.T) {
	chunks := render.Chunk(strings.Repeat("y", render.DefaultChunkLimit+1), 0)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != render.DefaultChunkLimit {
		t.Fatalf("first chunk has %d bytes", len(chunks[0]))
	}
}

func TestChunkSmallInputs(t *testing.T) {
	if chunks := render.Chunk("", 10); chunks != nil {
		t.Fatalf("expected no chunks for empty text, got %q", chunks)
	}
	if chunks := render.Chunk("short", 10); !reflect.DeepEqual(chunks, []string{"short"}) {
		t.Fatalf("unexpected chunks: %q", chunks)
	}
}

func TestAudioCaption(t *testing.T) {
	tracks := []mediainfo.AudioTrack{
		{Index: 1, Channels: "5.1", Bitrate: "640kb/s", Language: "English", Codec: "DDP"},
		{Index: 2, Channels: "2.0", Bitrate: "128kb/s", Language: "Tamil", Codec: "AAC"},
	}

	got := render.AudioCaption(tracks)

	want := "🎧 <b>Audio:</b>\n" +
		"<b>1. English | DDP 5.1 @ 640kb/s</b>\n" +
		"<b>2. Tamil | AAC 2.0 @ 128kb/s</b>"
	if got != want {
		t.Fatalf("unexpected caption:\n got: %q\nwant: %q", got, want)
	}
}

func TestAudioCaptionSkipsEmptyFields(t *testing.T) {
	tracks := []mediainfo.AudioTrack{
		{Index: 1, Channels: "5.1", Codec: "DTS"},
	}

	got := render.AudioCaption(tracks)

	want := "🎧 <b>Audio:</b>\n<b>1.  | DTS 5.1</b>"
	if got != want {
		t.Fatalf("unexpected caption: %q", got)
	}
}

func TestAudioCaptionNoTracks(t *testing.T) {
	if got := render.AudioCaption(nil); got != "" {
		t.Fatalf("expected empty caption, got %q", got)
	}
}

func TestAudioBlockquote(t *testing.T) {
	tracks := []mediainfo.AudioTrack{
		{Index: 1, Channels: "5.1", Bitrate: "640kb/s", Language: "English", Codec: "DDP"},
		{Index: 2, Channels: "2.0", Bitrate: "128kb/s", Language: "Tamil", Codec: "AAC"},
	}

	got := render.AudioBlockquote(tracks)

	want := "🔈 <b>Audio Tracks:</b>\n<b><blockquote>" +
		"DDP | 5.1 | 640 kb/s | English\n" +
		"AAC | 2.0 | 128 kb/s | Tamil" +
		"</blockquote></b>"
	if got != want {
		t.Fatalf("unexpected blockquote:\n got: %q\nwant: %q", got, want)
	}
}

func TestAudioBlockquoteElidesEmptyFields(t *testing.T) {
	tracks := []mediainfo.AudioTrack{
		{Index: 1, Language: "Japanese", Codec: "OPUS"},
	}

	got := render.AudioBlockquote(tracks)

	want := "🔈 <b>Audio Tracks:</b>\n<b><blockquote>OPUS | Japanese</blockquote></b>"
	if got != want {
		t.Fatalf("unexpected blockquote: %q", got)
	}
}

func TestAudioBlockquoteNoTracks(t *testing.T) {
	if got := render.AudioBlockquote(nil); got != "" {
		t.Fatalf("expected empty blockquote, got %q", got)
	}
}
