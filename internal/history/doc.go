// Package history records completed transcription runs in a SQLite database.
package history
