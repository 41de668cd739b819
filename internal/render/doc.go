// Package render turns a transcript.Result into textual output formats:
// plain text, word- and segment-level timestamped transcripts, SRT and
// WebVTT subtitles, and a summary statistics table.
//
// Every function here is pure and deterministic: the same Result always
// yields byte-identical output, and nothing mutates the Result. A result
// without word or segment data renders to an explicit sentinel string
// rather than an error.
package render
