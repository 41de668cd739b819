package render

import (
	"strings"
	"testing"

	"scribe/internal/transcript"
)

func subtitleFixture() *transcript.Result {
	segments := []transcript.Segment{
		{ID: 0, Start: 0, End: 2.5, Text: "First line"},
		{ID: 1, Start: 2.5, End: 4, Text: "   "},
		{ID: 2, Start: 4, End: 6.25, Text: "Second line"},
	}
	return transcript.New("First line Second line", segments, nil, "en")
}

func TestSRTNumbersEmittedBlocksOnly(t *testing.T) {
	out := SRT(subtitleFixture())

	want := strings.Join([]string{
		"1",
		"00:00:00,000 --> 00:00:02,500",
		"First line",
		"",
		"2",
		"00:00:04,000 --> 00:00:06,250",
		"Second line",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected SRT output:\n%s", out)
	}
}

func TestSRTEmptyReturnsSentinel(t *testing.T) {
	r := transcript.New("", nil, nil, "en")
	if got := SRT(r); got != NoSRTData {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestVTTLayout(t *testing.T) {
	out := VTT(subtitleFixture())

	if !strings.HasPrefix(out, "WEBVTT\n\n") {
		t.Fatalf("missing WEBVTT header:\n%s", out)
	}
	if !strings.Contains(out, "00:00:00.000 --> 00:00:02.500\nFirst line\n") {
		t.Fatalf("missing first cue:\n%s", out)
	}
	if !strings.Contains(out, "00:00:04.000 --> 00:00:06.250\nSecond line\n") {
		t.Fatalf("missing second cue:\n%s", out)
	}
	if strings.Contains(out, "-->  ") {
		t.Fatalf("empty segment leaked into output:\n%s", out)
	}
}

func TestVTTEmptyReturnsSentinel(t *testing.T) {
	r := transcript.New("", nil, nil, "en")
	if got := VTT(r); got != NoVTTData {
		t.Fatalf("expected sentinel, got %q", got)
	}
}
