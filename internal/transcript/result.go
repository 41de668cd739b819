package transcript

import "strings"

// LanguageUnknown is the language value used when the engine does not report one.
const LanguageUnknown = "unknown"

// Word is a single time-bounded token with the engine's confidence score.
type Word struct {
	Text       string
	Start      float64
	End        float64
	Confidence float64
}

// Segment is a contiguous time-bounded span of transcript text.
type Segment struct {
	ID    int
	Start float64
	End   float64
	Text  string
}

// Result is the immutable output of one transcription run. It is produced
// once by the engine and only ever read by renderers and exporters.
type Result struct {
	Text     string
	Segments []Segment
	Words    []Word
	Language string
	Duration float64
}

// New builds a Result from engine output, deriving Duration from the last
// segment and normalizing an absent language to LanguageUnknown.
func New(text string, segments []Segment, words []Word, language string) *Result {
	r := &Result{
		Text:     text,
		Segments: segments,
		Words:    words,
		Language: strings.TrimSpace(language),
	}
	if r.Language == "" {
		r.Language = LanguageUnknown
	}
	if len(segments) > 0 {
		r.Duration = segments[len(segments)-1].End
	}
	return r
}

// WordCount returns the number of words with non-empty text.
func (r *Result) WordCount() int {
	count := 0
	for _, w := range r.Words {
		if strings.TrimSpace(w.Text) != "" {
			count++
		}
	}
	return count
}

// SegmentCount returns the number of segments.
func (r *Result) SegmentCount() int {
	return len(r.Segments)
}
