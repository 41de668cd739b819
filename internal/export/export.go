package export

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scribe/internal/render"
	"scribe/internal/transcript"
)

// ContentKind selects which renderer produces an export.
type ContentKind string

const (
	ContentPlainText         ContentKind = "plain_text"
	ContentWordTimestamps    ContentKind = "word_timestamps"
	ContentSegmentTimestamps ContentKind = "segment_timestamps"
	ContentSubtitles         ContentKind = "subtitles"
)

// FileKind is the output container format.
type FileKind string

const (
	FileTXT  FileKind = "txt"
	FileDOCX FileKind = "docx"
	FileSRT  FileKind = "srt"
	FileVTT  FileKind = "vtt"
)

// DefaultBaseName is the filename prefix used when the caller supplies an
// empty or fully unsanitizable base name.
const DefaultBaseName = "transcription"

// Pair is one (content kind, file kind) export target.
type Pair struct {
	Content ContentKind
	File    FileKind
}

// DefaultPairs lists every export target the application offers.
func DefaultPairs() []Pair {
	return []Pair{
		{ContentPlainText, FileTXT},
		{ContentPlainText, FileDOCX},
		{ContentWordTimestamps, FileTXT},
		{ContentWordTimestamps, FileDOCX},
		{ContentSegmentTimestamps, FileTXT},
		{ContentSegmentTimestamps, FileDOCX},
		{ContentSubtitles, FileSRT},
		{ContentSubtitles, FileVTT},
	}
}

// Artifact is one produced export: a suggested filename and its payload.
type Artifact struct {
	Filename string
	Label    string
	Data     []byte
}

// Exporter maps (content kind, file kind) pairs to filenames and payloads.
// It holds no mutable state; one Exporter may serve concurrent results.
type Exporter struct {
	defaultBaseName string
}

// NewExporter builds an Exporter. An empty defaultBaseName falls back to
// DefaultBaseName.
func NewExporter(defaultBaseName string) *Exporter {
	if strings.TrimSpace(defaultBaseName) == "" {
		defaultBaseName = DefaultBaseName
	}
	return &Exporter{defaultBaseName: defaultBaseName}
}

// Filename produces the export filename for a base name and target pair.
// The base name keeps only alphanumerics, spaces, hyphens, and underscores,
// with spaces replaced by underscores afterwards. Sanitization never fails:
// an empty or fully stripped base name uses the configured default.
func (e *Exporter) Filename(baseName string, content ContentKind, file FileKind) string {
	clean := sanitizeBaseName(baseName)
	if clean == "" {
		clean = e.defaultBaseName
	}
	return fmt.Sprintf("%s_%s.%s", clean, content, file)
}

func sanitizeBaseName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		case r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

var labelCaser = cases.Title(language.English)

// displayNames maps known content kinds to their download display names.
var displayNames = map[ContentKind]string{
	ContentPlainText:         "Plain Text",
	ContentWordTimestamps:    "Word Timestamps",
	ContentSegmentTimestamps: "Segment Timestamps",
}

// Label returns the display label for a download of the given pair. Unknown
// content kinds are title-cased verbatim.
func Label(content ContentKind, file FileKind) string {
	name, ok := displayNames[content]
	if !ok {
		name = labelCaser.String(string(content))
	}
	return fmt.Sprintf("Download %s (%s)", name, strings.ToUpper(string(file)))
}

// Payload renders the byte payload for one export pair. Text and subtitle
// payloads are the UTF-8 bytes of the corresponding rendering; DOCX payloads
// go through the document assembler. A failure yields (nil, err), never a
// partial payload.
func (e *Exporter) Payload(r *transcript.Result, content ContentKind, file FileKind) ([]byte, error) {
	switch file {
	case FileTXT:
		text, err := textRendering(r, content)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case FileDOCX:
		return Document(r, content)
	case FileSRT:
		return []byte(render.SRT(r)), nil
	case FileVTT:
		return []byte(render.VTT(r)), nil
	default:
		return nil, fmt.Errorf("export: unsupported file kind %q", file)
	}
}

// Export produces the complete artifact for one pair. Pairs are independent:
// a failure here never corrupts or blocks sibling exports.
func (e *Exporter) Export(r *transcript.Result, baseName string, content ContentKind, file FileKind) (Artifact, error) {
	data, err := e.Payload(r, content, file)
	if err != nil {
		return Artifact{}, fmt.Errorf("export %s as %s: %w", content, file, err)
	}
	return Artifact{
		Filename: e.Filename(baseName, content, file),
		Label:    Label(content, file),
		Data:     data,
	}, nil
}

// ExportAll produces every requested pair and hands each finished artifact
// to write. Pairs are independent: a failed rendering or a failed write is
// recorded and the loop continues, so one broken pair never blocks the
// sibling artifacts. The returned error joins every per-pair failure.
func (e *Exporter) ExportAll(r *transcript.Result, baseName string, pairs []Pair, write func(Artifact) error) error {
	var errs []error
	for _, pair := range pairs {
		artifact, err := e.Export(r, baseName, pair.Content, pair.File)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := write(artifact); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", artifact.Filename, err))
		}
	}
	return errors.Join(errs...)
}

func textRendering(r *transcript.Result, content ContentKind) (string, error) {
	switch content {
	case ContentPlainText:
		return render.PlainText(r), nil
	case ContentWordTimestamps:
		return render.WordTimestamps(r), nil
	case ContentSegmentTimestamps:
		return render.SegmentTimestamps(r), nil
	default:
		return "", fmt.Errorf("export: no text rendering for content kind %q", content)
	}
}
