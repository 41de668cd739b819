package render

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"scribe/internal/transcript"
)

// englishPrinter renders thousands-separated counts (1,234).
var englishPrinter = message.NewPrinter(language.English)

// SummaryEntry is one row of the transcription summary.
type SummaryEntry struct {
	Key   string
	Value string
}

// Summary computes the transcription statistics table. The entry order is
// fixed and consumers must preserve it.
func Summary(r *transcript.Result) []SummaryEntry {
	wordCount := r.WordCount()

	wpm := 0
	if r.Duration > 0 {
		wpm = int(float64(wordCount) / (r.Duration / 60))
	}

	return []SummaryEntry{
		{Key: "Duration", Value: Timestamp(r.Duration)},
		{Key: "Word Count", Value: englishPrinter.Sprintf("%d", wordCount)},
		{Key: "Segments", Value: strconv.Itoa(r.SegmentCount())},
		{Key: "Language", Value: strings.ToUpper(r.Language)},
		{Key: "Words per Minute", Value: strconv.Itoa(wpm)},
		{Key: "Characters", Value: englishPrinter.Sprintf("%d", len(r.Text))},
	}
}
