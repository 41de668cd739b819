package whisperx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"scribe/internal/language"
	"scribe/internal/services"
	"scribe/internal/transcript"
)

// ProgressFunc receives transcription progress as a fraction in [0, 1] with
// a short human-readable message. Fractions are monotonically non-decreasing
// and reach 1.0 on success.
type ProgressFunc func(fraction float64, message string)

// Service provides WhisperX transcription capabilities.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewService creates a WhisperX service with the given configuration.
func NewService(cfg Config) *Service {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Task == "" {
		cfg.Task = DefaultTask
	}
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) ([]byte, error)) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// CUDAEnabled returns whether CUDA is enabled.
func (s *Service) CUDAEnabled() bool {
	return s.cfg.CUDAEnabled
}

// Transcribe runs WhisperX against a normalized WAV file and returns the
// parsed result. outputDir is where WhisperX writes its JSON output; it is
// created if missing. Progress callbacks are optional.
func (s *Service) Transcribe(ctx context.Context, source, outputDir string, progress ProgressFunc) (*transcript.Result, error) {
	if source == "" {
		return nil, services.Wrap(services.ErrValidation, "whisperx", "transcribe", "source path required", nil)
	}
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	report := func(fraction float64, message string) {
		if progress != nil {
			progress(fraction, message)
		}
	}

	report(0.1, "starting transcription")

	args := s.buildArgs(source, outputDir)
	if err := s.run(ctx, UVXCommand, args...); err != nil {
		return nil, err
	}

	report(0.9, "processing results")

	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	jsonPath := filepath.Join(outputDir, baseName+".json")
	result, err := LoadResult(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	report(1.0, "transcription complete")
	return result, nil
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	var output []byte
	var err error
	if s.commandRunner != nil {
		output, err = s.commandRunner(ctx, name, args...)
	} else {
		cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
		output, err = cmd.CombinedOutput()
	}
	if err != nil {
		detail := strings.TrimSpace(string(output))
		return services.Wrap(services.ErrExternalTool, "whisperx", "run", detail, err)
	}
	return nil
}

// buildArgs constructs the uvx command arguments for WhisperX.
func (s *Service) buildArgs(source, outputDir string) []string {
	args := make([]string, 0, 24)

	// Index URLs
	if s.cfg.CUDAEnabled {
		args = append(args,
			"--index-url", CUDAIndexURL,
			"--extra-index-url", PypiIndexURL,
		)
	} else {
		args = append(args, "--index-url", PypiIndexURL)
	}

	args = append(args,
		"whisperx",
		source,
		"--model", s.cfg.Model,
		"--batch_size", BatchSize,
		"--output_dir", outputDir,
		"--output_format", OutputFormat,
		"--task", s.cfg.Task,
	)

	if lang := normalizedLanguage(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}

	// Device
	if s.cfg.CUDAEnabled {
		args = append(args, "--device", CUDADevice)
	} else {
		args = append(args, "--device", CPUDevice, "--compute_type", CPUComputeType)
	}

	return args
}

// normalizedLanguage maps user input ("eng", "German") to the ISO 639-1
// code the engine expects. Unrecognized input is passed through as typed so
// the engine can reject it with its own message.
func normalizedLanguage(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if code := language.ToISO2(trimmed); code != "" {
		return code
	}
	return trimmed
}
