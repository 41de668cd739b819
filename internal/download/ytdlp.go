package download

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"scribe/internal/services"
	"scribe/internal/textutil"
)

// YTDLPCommand is the media downloader binary name.
const YTDLPCommand = "yt-dlp"

// CommandRunner executes an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// VideoInfo is the metadata subset scribe needs from a remote video.
type VideoInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	Uploader   string  `json:"uploader"`
	ViewCount  int64   `json:"view_count"`
	UploadDate string  `json:"upload_date"`
}

// SafeTitle returns the video title as a filename-safe base name, or the
// video ID when the title sanitizes to nothing.
func (v VideoInfo) SafeTitle() string {
	if safe := textutil.SanitizeTitle(v.Title); safe != "" {
		return safe
	}
	return textutil.SanitizeToken(v.ID)
}

// Downloader fetches audio from remote video URLs via yt-dlp.
type Downloader struct {
	binary string
	runner CommandRunner
}

// NewDownloader creates a downloader. An empty binary uses YTDLPCommand.
func NewDownloader(binary string) *Downloader {
	if binary == "" {
		binary = YTDLPCommand
	}
	return &Downloader{binary: binary}
}

// WithCommandRunner sets a custom command runner (for testing).
func (d *Downloader) WithCommandRunner(runner CommandRunner) {
	d.runner = runner
}

// Info fetches metadata for a video without downloading it.
func (d *Downloader) Info(ctx context.Context, url string) (VideoInfo, error) {
	if strings.TrimSpace(url) == "" {
		return VideoInfo{}, services.Wrap(services.ErrValidation, "download", "info", "url required", nil)
	}

	output, err := d.run(ctx, "-J", "--skip-download", "--no-warnings", url)
	if err != nil {
		return VideoInfo{}, err
	}

	var info VideoInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return VideoInfo{}, fmt.Errorf("parse video info: %w", err)
	}
	if info.Title == "" {
		info.Title = "Unknown"
	}
	return info, nil
}

// Audio downloads the best audio stream for url into destDir as WAV and
// returns the downloaded file path. The WAV container avoids a second
// decode pass before normalization.
func (d *Downloader) Audio(ctx context.Context, url, destDir string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", services.Wrap(services.ErrValidation, "download", "audio", "url required", nil)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure download dir: %w", err)
	}

	template := filepath.Join(destDir, "%(id)s.%(ext)s")
	output, err := d.run(ctx,
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "wav",
		"--no-playlist",
		"--no-warnings",
		"-o", template,
		"--print", "after_move:filepath",
		url,
	)
	if err != nil {
		return "", err
	}

	path := lastNonEmptyLine(string(output))
	if path == "" {
		return "", services.Wrap(services.ErrExternalTool, "download", "audio", "yt-dlp reported no output file", nil)
	}
	return path, nil
}

func (d *Downloader) run(ctx context.Context, args ...string) ([]byte, error) {
	var output []byte
	var err error
	if d.runner != nil {
		output, err = d.runner(ctx, d.binary, args...)
	} else {
		cmd := exec.CommandContext(ctx, d.binary, args...) //nolint:gosec
		output, err = cmd.CombinedOutput()
	}
	if err != nil {
		detail := strings.TrimSpace(string(output))
		return nil, services.Wrap(services.ErrExternalTool, "download", "yt-dlp", detail, err)
	}
	return output, nil
}

func lastNonEmptyLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
