// Package pipeline orchestrates a transcription run end to end: source
// resolution, audio normalization, engine execution, history recording, and
// export fan-out.
package pipeline
