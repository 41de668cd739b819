// Package export maps a transcription result to downloadable artifacts.
//
// The coordinator resolves each (content kind, file kind) pair to a
// sanitized filename, a display label, and a byte payload. Text and
// subtitle payloads are the UTF-8 bytes of the render package's output;
// DOCX payloads are assembled here. Every pair is independent; a failed
// DOCX assembly never blocks the sibling text or subtitle exports.
package export
