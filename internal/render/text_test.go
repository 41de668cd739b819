package render

import (
	"strings"
	"testing"

	"scribe/internal/transcript"
)

func TestPlainTextStripsSurroundingWhitespace(t *testing.T) {
	r := transcript.New("  Hello world test  ", nil, nil, "en")
	if got := PlainText(r); got != "Hello world test" {
		t.Fatalf("PlainText = %q", got)
	}
}

func TestWordTimestampsEmptyReturnsSentinel(t *testing.T) {
	r := transcript.New("", nil, nil, "en")
	if got := WordTimestamps(r); got != NoWordData {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestWordTimestampsGroupsOfEight(t *testing.T) {
	words := make([]transcript.Word, 0, 10)
	for i := 0; i < 10; i++ {
		words = append(words, transcript.Word{
			Text:  "w" + strings.Repeat("x", i),
			Start: float64(i),
			End:   float64(i) + 0.5,
		})
	}
	r := transcript.New("", nil, words, "en")
	out := WordTimestamps(r)

	if !strings.HasPrefix(out, "WORD-LEVEL TIMESTAMPS\n"+strings.Repeat("=", 50)) {
		t.Fatalf("missing banner header:\n%s", out)
	}

	// Ten words split into a group of eight and a group of two.
	var groups []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, `"`) {
			groups = append(groups, line)
		}
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d:\n%s", len(groups), out)
	}
	if got := strings.Count(groups[0], " | "); got != 7 {
		t.Fatalf("first group should join 8 entries, got %d separators", got)
	}
	if got := strings.Count(groups[1], " | "); got != 1 {
		t.Fatalf("second group should join 2 entries, got %d separators", got)
	}
	if !strings.Contains(groups[0], `"w" [00:00:00.000-00:00:00.500]`) {
		t.Fatalf("unexpected first entry: %q", groups[0])
	}
}

func TestWordTimestampsSkipsEmptyWordsWithoutBreakingGroups(t *testing.T) {
	words := []transcript.Word{
		{Text: "one", Start: 0, End: 1},
		{Text: "   ", Start: 1, End: 2},
		{Text: "three", Start: 2, End: 3},
	}
	r := transcript.New("", nil, words, "en")
	out := WordTimestamps(r)

	if strings.Contains(out, `""`) {
		t.Fatalf("empty word leaked into output:\n%s", out)
	}
	if !strings.Contains(out, `"one" [00:00:00.000-00:00:01.000] | "three" [00:00:02.000-00:00:03.000]`) {
		t.Fatalf("expected one group with two entries:\n%s", out)
	}
}

func TestSegmentTimestampsSingleSegment(t *testing.T) {
	segments := []transcript.Segment{{ID: 0, Start: 0, End: 1.5, Text: "Hello world test"}}
	r := transcript.New("Hello world test", segments, nil, "en")
	out := SegmentTimestamps(r)

	if !strings.Contains(out, "SEGMENT-LEVEL TIMESTAMPS") {
		t.Fatalf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "Segment 001") {
		t.Fatalf("missing sequence header:\n%s", out)
	}
	if !strings.Contains(out, "Time: 00:00:00.000 --> 00:00:01.500") {
		t.Fatalf("missing time range:\n%s", out)
	}
	if !strings.Contains(out, "Text: Hello world test") {
		t.Fatalf("missing text line:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("-", 40)) {
		t.Fatalf("missing rule separator:\n%s", out)
	}
}

func TestSegmentTimestampsEmptyReturnsSentinel(t *testing.T) {
	r := transcript.New("", nil, nil, "en")
	if got := SegmentTimestamps(r); got != NoSegmentData {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	segments := []transcript.Segment{
		{ID: 0, Start: 0, End: 2, Text: "alpha"},
		{ID: 1, Start: 2, End: 4, Text: "beta"},
	}
	words := []transcript.Word{
		{Text: "alpha", Start: 0, End: 2, Confidence: 0.9},
		{Text: "beta", Start: 2, End: 4, Confidence: 0.8},
	}
	r := transcript.New("alpha beta", segments, words, "en")

	renderers := map[string]func(*transcript.Result) string{
		"plain":    PlainText,
		"words":    WordTimestamps,
		"segments": SegmentTimestamps,
		"srt":      SRT,
		"vtt":      VTT,
	}
	for name, fn := range renderers {
		if first, second := fn(r), fn(r); first != second {
			t.Errorf("%s rendering not deterministic", name)
		}
	}
}
