package render

import (
	"fmt"
	"strings"

	"scribe/internal/transcript"
)

// Sentinel strings for subtitle renderings of a segment-less result.
const (
	NoSRTData = "No segments available for SRT format."
	NoVTTData = "No segments available for VTT format."
)

// SRT renders the segments as SubRip subtitles. Sequence numbers count
// emitted blocks only: a segment whose text is empty after trimming is
// skipped and does not consume a number.
func SRT(r *transcript.Result) string {
	if len(r.Segments) == 0 {
		return NoSRTData
	}

	var lines []string
	sequence := 0
	for _, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		sequence++
		lines = append(lines,
			fmt.Sprintf("%d", sequence),
			fmt.Sprintf("%s --> %s", SubtitleTimestamp(seg.Start), SubtitleTimestamp(seg.End)),
			text,
			"",
		)
	}

	return strings.Join(lines, "\n")
}

// VTT renders the segments as WebVTT subtitles.
func VTT(r *transcript.Result) string {
	if len(r.Segments) == 0 {
		return NoVTTData
	}

	lines := []string{"WEBVTT", ""}
	for _, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("%s --> %s", Timestamp(seg.Start), Timestamp(seg.End)),
			text,
			"",
		)
	}

	return strings.Join(lines, "\n")
}
