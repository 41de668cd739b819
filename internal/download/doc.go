// Package download wraps yt-dlp for remote audio acquisition.
//
// Info fetches video metadata without downloading; Audio extracts the best
// audio stream as WAV into a destination directory. The downloader shells
// out to the yt-dlp binary and accepts an injectable command runner for
// tests, matching the other external tool wrappers.
package download
