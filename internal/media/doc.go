// Package media wraps ffmpeg and ffprobe for audio normalization.
//
// Transcription wants mono 16kHz PCM WAV input; Normalize converts any
// decodable audio or video file into that shape. Duration probes the input
// length so the pipeline can report progress and record history. Both
// operations accept an injectable command runner for tests.
package media
