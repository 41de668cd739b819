package media

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"scribe/internal/services"
)

// Command names for external tools.
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// CommandRunner executes an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Processor normalizes audio files into the transcription target format.
type Processor struct {
	cfg    Config
	runner CommandRunner
}

// Config captures the normalization target.
type Config struct {
	// SampleRate is the output sample rate in Hz (16000 for transcription).
	SampleRate int
	// Channels is the output channel count (1 for transcription).
	Channels int
	// FFmpegBinary overrides the ffmpeg command name.
	FFmpegBinary string
	// FFprobeBinary overrides the ffprobe command name.
	FFprobeBinary string
}

// NewProcessor creates an audio processor with the given configuration.
func NewProcessor(cfg Config) *Processor {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 16000
	}
	if cfg.Channels == 0 {
		cfg.Channels = 1
	}
	if cfg.FFmpegBinary == "" {
		cfg.FFmpegBinary = FFmpegCommand
	}
	if cfg.FFprobeBinary == "" {
		cfg.FFprobeBinary = FFprobeCommand
	}
	return &Processor{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (p *Processor) WithCommandRunner(runner CommandRunner) {
	p.runner = runner
}

// Normalize converts an audio file into a mono (or configured channel
// count) PCM WAV at the configured sample rate, suitable for the
// transcription engine. The output path is derived from the input name
// inside destDir.
func (p *Processor) Normalize(ctx context.Context, source, destDir string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", services.Wrap(services.ErrValidation, "media", "normalize", "source path required", nil)
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	dest := filepath.Join(destDir, base+".wav")

	args := buildNormalizeArgs(source, p.cfg.SampleRate, p.cfg.Channels, dest)
	if output, err := p.run(ctx, p.cfg.FFmpegBinary, args...); err != nil {
		detail := strings.TrimSpace(string(output))
		return "", services.Wrap(services.ErrExternalTool, "media", "normalize", detail, err)
	}
	return dest, nil
}

func buildNormalizeArgs(source string, sampleRate, channels int, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", fmt.Sprintf("%d", channels),
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-c:a", "pcm_s16le",
		dest,
	}
}

func (p *Processor) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if p.runner != nil {
		return p.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	return cmd.CombinedOutput()
}
