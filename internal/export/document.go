package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"

	"scribe/internal/render"
	"scribe/internal/transcript"
)

// Document assembles the DOCX report for a transcription result: a title,
// the summary table, and one content section chosen by the content kind.
// Assembly is all-or-nothing: any failure returns a nil payload.
func Document(r *transcript.Result, content ContentKind) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("document: create: %w", err)
	}

	if _, err := doc.AddHeading("Audio Transcription Report", 0); err != nil {
		return nil, fmt.Errorf("document: title: %w", err)
	}

	if err := addSummarySection(doc, r); err != nil {
		return nil, fmt.Errorf("document: summary: %w", err)
	}

	switch content {
	case ContentWordTimestamps:
		err = addWordTimestampsSection(doc, r)
	case ContentSegmentTimestamps:
		err = addSegmentTimestampsSection(doc, r)
	default:
		err = addPlainTextSection(doc, r)
	}
	if err != nil {
		return nil, fmt.Errorf("document: content: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("document: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

func addSummarySection(doc *docx.RootDoc, r *transcript.Result) error {
	if _, err := doc.AddHeading("Summary", 1); err != nil {
		return err
	}

	table := doc.AddTable()
	table.Style("LightList-Accent4")
	for _, entry := range render.Summary(r) {
		row := table.AddRow()
		key := row.AddCell().AddParagraph("").AddText(entry.Key)
		key.Property = &ctypes.RunProperty{Bold: ctypes.OnOffFromBool(true)}
		row.AddCell().AddParagraph(entry.Value)
	}
	doc.AddEmptyParagraph()
	return nil
}

func addPlainTextSection(doc *docx.RootDoc, r *transcript.Result) error {
	if _, err := doc.AddHeading("Transcription", 1); err != nil {
		return err
	}
	doc.AddParagraph(render.PlainText(r))
	return nil
}

// addWordTimestampsSection groups words into timestamped lines. The line
// breaks after ten words or at a sentence-ending word, whichever comes
// first. This is deliberately a different policy from the eight-word
// grouping in the text rendering; the two consumers have different layout
// needs.
func addWordTimestampsSection(doc *docx.RootDoc, r *transcript.Result) error {
	if _, err := doc.AddHeading("Word-Level Timestamps", 1); err != nil {
		return err
	}
	if len(r.Words) == 0 {
		doc.AddParagraph(render.NoWordData)
		return nil
	}

	var line []string
	var lineStart float64
	for _, w := range r.Words {
		word := strings.TrimSpace(w.Text)
		if word == "" {
			continue
		}
		if len(line) == 0 {
			lineStart = w.Start
		}
		line = append(line, word)

		if len(line) >= 10 || endsSentence(word) {
			addTimestampedLine(doc, line, lineStart, w.End)
			line = nil
		}
	}
	if len(line) > 0 {
		addTimestampedLine(doc, line, lineStart, r.Words[len(r.Words)-1].End)
	}
	return nil
}

func addTimestampedLine(doc *docx.RootDoc, words []string, start, end float64) {
	stamp := doc.AddParagraph("")
	run := stamp.AddText(fmt.Sprintf("[%s-%s]", render.Timestamp(start), render.Timestamp(end)))
	run.Italic(true)
	run.Bold(true)

	doc.AddParagraph(strings.Join(words, " "))
	doc.AddEmptyParagraph()
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
}

func addSegmentTimestampsSection(doc *docx.RootDoc, r *transcript.Result) error {
	if _, err := doc.AddHeading("Segment-Level Timestamps", 1); err != nil {
		return err
	}
	if len(r.Segments) == 0 {
		doc.AddParagraph(render.NoSegmentData)
		return nil
	}

	for i, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if _, err := doc.AddHeading(fmt.Sprintf("Segment %03d", i+1), 2); err != nil {
			return err
		}
		stamp := doc.AddParagraph("")
		run := stamp.AddText(fmt.Sprintf("Time: %s → %s", render.Timestamp(seg.Start), render.Timestamp(seg.End)))
		run.Italic(true)

		doc.AddParagraph(text)
		doc.AddEmptyParagraph()
	}
	return nil
}
