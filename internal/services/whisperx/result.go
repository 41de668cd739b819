package whisperx

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"scribe/internal/transcript"
)

// wordPayload is a single word with timing from WhisperX output.
type wordPayload struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Score float64 `json:"score"`
}

// segmentPayload is a transcribed segment from WhisperX JSON output.
type segmentPayload struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []wordPayload `json:"words"`
}

// resultPayload is the JSON structure WhisperX writes.
type resultPayload struct {
	Segments []segmentPayload `json:"segments"`
	Language string           `json:"language"`
}

// LoadResult reads a WhisperX JSON file and converts it into the immutable
// transcript result consumed by the renderers.
func LoadResult(jsonPath string) (*transcript.Result, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisperx output: %w", err)
	}
	var payload resultPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisperx json: %w", err)
	}
	return payload.toResult(), nil
}

func (p resultPayload) toResult() *transcript.Result {
	segments := make([]transcript.Segment, 0, len(p.Segments))
	var words []transcript.Word
	var parts []string

	for i, seg := range p.Segments {
		segments = append(segments, transcript.Segment{
			ID:    i,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
		for _, w := range seg.Words {
			words = append(words, transcript.Word{
				Text:       w.Word,
				Start:      w.Start,
				End:        w.End,
				Confidence: w.Score,
			})
		}
	}

	return transcript.New(strings.Join(parts, " "), segments, words, p.Language)
}
