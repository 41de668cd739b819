package render

import (
	"fmt"
	"strings"

	"scribe/internal/transcript"
)

// Sentinel strings returned when the engine did not emit the data a
// rendering needs. These are normal outputs, not errors.
const (
	NoWordData    = "No word-level timestamps available."
	NoSegmentData = "No segment-level timestamps available."
)

// wordsPerGroup is the fixed group size for the word-timestamp text
// rendering. The DOCX renderer uses its own, deliberately different
// grouping policy (see export.Document).
const wordsPerGroup = 8

// PlainText returns the full transcript with surrounding whitespace stripped.
func PlainText(r *transcript.Result) string {
	return strings.TrimSpace(r.Text)
}

// WordTimestamps renders the word list as groups of eight quoted words, each
// tagged with its own time range. Words with empty text are skipped without
// disturbing the grouping.
func WordTimestamps(r *transcript.Result) string {
	if len(r.Words) == 0 {
		return NoWordData
	}

	lines := []string{
		"WORD-LEVEL TIMESTAMPS",
		strings.Repeat("=", 50),
		"",
	}

	for i := 0; i < len(r.Words); i += wordsPerGroup {
		end := i + wordsPerGroup
		if end > len(r.Words) {
			end = len(r.Words)
		}

		entries := make([]string, 0, wordsPerGroup)
		for _, w := range r.Words[i:end] {
			word := strings.TrimSpace(w.Text)
			if word == "" {
				continue
			}
			entries = append(entries, fmt.Sprintf("%q [%s-%s]", word, Timestamp(w.Start), Timestamp(w.End)))
		}

		if len(entries) > 0 {
			lines = append(lines, strings.Join(entries, " | "), "")
		}
	}

	return strings.Join(lines, "\n")
}

// SegmentTimestamps renders each non-empty segment as a four-line block:
// zero-padded sequence header, time range, text, and a rule separator.
func SegmentTimestamps(r *transcript.Result) string {
	if len(r.Segments) == 0 {
		return NoSegmentData
	}

	lines := []string{
		"SEGMENT-LEVEL TIMESTAMPS",
		strings.Repeat("=", 50),
		"",
	}

	for i, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("Segment %03d", i+1),
			fmt.Sprintf("Time: %s --> %s", Timestamp(seg.Start), Timestamp(seg.End)),
			"Text: "+text,
			strings.Repeat("-", 40),
		)
	}

	return strings.Join(lines, "\n")
}
