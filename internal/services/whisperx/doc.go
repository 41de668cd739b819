// Package whisperx runs WhisperX through uvx and parses its JSON output
// into transcript results.
package whisperx
