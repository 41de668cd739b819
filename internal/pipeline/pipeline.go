package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"scribe/internal/config"
	"scribe/internal/download"
	"scribe/internal/export"
	"scribe/internal/history"
	"scribe/internal/logging"
	"scribe/internal/media"
	"scribe/internal/services"
	"scribe/internal/services/whisperx"
	"scribe/internal/textutil"
	"scribe/internal/transcript"
	"scribe/internal/workspace"
)

// Request describes one transcription run.
type Request struct {
	// Source is a media URL or a local file path.
	Source string
	// Language overrides the configured transcription language when set.
	Language string
	// OutputDir overrides the configured export directory when set.
	OutputDir string
	// Formats restricts exports to the named file kinds; empty means all.
	Formats []string
	// BaseName overrides the export filename prefix when set.
	BaseName string
}

// Outcome is the published result of a completed run.
type Outcome struct {
	RunID      string
	SourceKind string
	Title      string
	AudioPath  string
	Result     *transcript.Result
	Written    []string
}

// Transcriber runs the engine against a normalized WAV file.
type Transcriber interface {
	Transcribe(ctx context.Context, source, outputDir string, progress whisperx.ProgressFunc) (*transcript.Result, error)
}

// Pipeline wires the download, normalization, transcription, history, and
// export stages into one run.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	downloader *download.Downloader
	processor  *media.Processor
	exporter   *export.Exporter
	store      *history.Store
	newEngine  func(whisperx.Config) Transcriber
}

// New builds a pipeline with real collaborators derived from cfg.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		downloader: download.NewDownloader(download.YTDLPCommand),
		processor: media.NewProcessor(media.Config{
			SampleRate: cfg.Audio.SampleRate,
			Channels:   cfg.Audio.Channels,
		}),
		exporter: export.NewExporter(cfg.Export.DefaultFilenamePrefix),
		newEngine: func(engineCfg whisperx.Config) Transcriber {
			return whisperx.NewService(engineCfg)
		},
	}
}

// WithDownloader replaces the yt-dlp client (for testing).
func (p *Pipeline) WithDownloader(d *download.Downloader) {
	p.downloader = d
}

// WithProcessor replaces the ffmpeg processor (for testing).
func (p *Pipeline) WithProcessor(proc *media.Processor) {
	p.processor = proc
}

// WithEngineFactory replaces engine construction (for testing).
func (p *Pipeline) WithEngineFactory(factory func(whisperx.Config) Transcriber) {
	p.newEngine = factory
}

// WithHistory attaches a history store. Runs are recorded only when the
// store is present and history is enabled in the configuration.
func (p *Pipeline) WithHistory(store *history.Store) {
	p.store = store
}

// IsURL reports whether source looks like a remote media URL.
func IsURL(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Run executes the full pipeline for one request.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Outcome, error) {
	if strings.TrimSpace(req.Source) == "" {
		return nil, services.Wrap(services.ErrValidation, "pipeline", "run", "source required", nil)
	}
	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, p.logger)

	lock, err := workspace.NewLock(p.cfg.Paths.WorkDir)
	if err != nil {
		return nil, err
	}
	if err := lock.Acquire(); err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release() }()

	maxAge := time.Duration(p.cfg.Workspace.TempMaxAgeMinutes) * time.Minute
	workspace.CleanStale(p.cfg.Paths.WorkDir, maxAge, logger)

	outcome := &Outcome{RunID: runID}

	audioPath, title, err := p.resolveSource(ctx, req.Source, logger, outcome)
	if err != nil {
		return nil, err
	}
	outcome.Title = title

	normalized, err := p.normalize(ctx, audioPath, logger)
	if err != nil {
		return nil, err
	}
	outcome.AudioPath = normalized

	result, err := p.transcribe(ctx, normalized, req.Language, logger)
	if err != nil {
		return nil, err
	}
	outcome.Result = result

	p.recordHistory(ctx, req, outcome, logger)

	written, err := p.export(ctx, req, outcome, logger)
	outcome.Written = written
	if err != nil {
		return nil, err
	}

	logger.Info("run complete",
		logging.String("title", outcome.Title),
		logging.Int("words", result.WordCount()),
		logging.Int("segments", result.SegmentCount()),
		logging.Int("artifacts", len(written)),
	)
	return outcome, nil
}

func (p *Pipeline) resolveSource(ctx context.Context, source string, logger *slog.Logger, outcome *Outcome) (string, string, error) {
	if IsURL(source) {
		outcome.SourceKind = history.SourceKindURL
		ctx = services.WithStage(ctx, "download")
		stageLogger := logging.WithContext(ctx, logger)

		info, err := p.downloader.Info(ctx, source)
		if err != nil {
			return "", "", err
		}
		stageLogger.Info("fetched video metadata",
			logging.String("title", info.Title),
			logging.Float64("duration_seconds", info.Duration),
		)

		audioPath, err := p.downloader.Audio(ctx, source, p.cfg.Paths.DownloadDir)
		if err != nil {
			return "", "", err
		}
		stageLogger.Info("downloaded audio", logging.String("path", audioPath))
		return audioPath, info.SafeTitle(), nil
	}

	outcome.SourceKind = history.SourceKindFile
	maxBytes := int64(p.cfg.Audio.MaxInputMiB) * 1024 * 1024
	if err := media.CheckInput(source, p.cfg.Audio.AllowedExtensions, maxBytes); err != nil {
		return "", "", err
	}
	if duration, probeErr := p.processor.Duration(ctx, source); probeErr == nil {
		logger.Info("input accepted",
			logging.String("path", source),
			logging.Float64("duration_seconds", duration),
		)
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	title := textutil.SanitizeTitle(base)
	if title == "" {
		title = export.DefaultBaseName
	}
	return source, title, nil
}

func (p *Pipeline) normalize(ctx context.Context, audioPath string, logger *slog.Logger) (string, error) {
	ctx = services.WithStage(ctx, "normalize")
	stageLogger := logging.WithContext(ctx, logger)

	normalized, err := p.processor.Normalize(ctx, audioPath, p.cfg.Paths.WorkDir)
	if err != nil {
		return "", err
	}
	stageLogger.Info("normalized audio",
		logging.String("path", normalized),
		logging.Int("sample_rate", p.cfg.Audio.SampleRate),
		logging.Int("channels", p.cfg.Audio.Channels),
	)
	return normalized, nil
}

func (p *Pipeline) transcribe(ctx context.Context, wavPath, language string, logger *slog.Logger) (*transcript.Result, error) {
	ctx = services.WithStage(ctx, "transcribe")
	stageLogger := logging.WithContext(ctx, logger)

	engineCfg := whisperx.Config{
		Model:       p.cfg.WhisperX.Model,
		CUDAEnabled: p.cfg.WhisperX.CUDAEnabled,
		Language:    p.cfg.WhisperX.Language,
		Task:        p.cfg.WhisperX.Task,
	}
	if strings.TrimSpace(language) != "" {
		engineCfg.Language = language
	}
	engine := p.newEngine(engineCfg)

	stageLogger.Info("starting transcription",
		logging.String("model", engineCfg.Model),
		logging.Bool("cuda", engineCfg.CUDAEnabled),
	)

	sampler := logging.NewProgressSampler(10)
	progress := func(fraction float64, message string) {
		percent := fraction * 100
		if sampler.ShouldLog(percent, "transcribe") {
			stageLogger.Info("transcription progress",
				logging.Float64("percent", percent),
				logging.String("detail", message),
			)
		}
	}

	return engine.Transcribe(ctx, wavPath, p.cfg.Paths.WorkDir, progress)
}

func (p *Pipeline) recordHistory(ctx context.Context, req Request, outcome *Outcome, logger *slog.Logger) {
	if p.store == nil || !p.cfg.History.Enabled {
		return
	}
	_, err := p.store.Record(ctx, history.Entry{
		ID:           outcome.RunID,
		SourceKind:   outcome.SourceKind,
		Source:       req.Source,
		Title:        outcome.Title,
		Language:     outcome.Result.Language,
		Duration:     outcome.Result.Duration,
		WordCount:    outcome.Result.WordCount(),
		SegmentCount: outcome.Result.SegmentCount(),
	})
	if err != nil {
		// History is advisory; a failed insert never fails the run.
		logger.Warn("failed to record history entry", logging.Error(err))
	}
}

func (p *Pipeline) export(ctx context.Context, req Request, outcome *Outcome, logger *slog.Logger) ([]string, error) {
	ctx = services.WithStage(ctx, "export")
	stageLogger := logging.WithContext(ctx, logger)

	pairs, err := export.PairsForFormats(selectFormats(req.Formats, p.cfg.Export.Formats))
	if err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if strings.TrimSpace(outputDir) == "" {
		outputDir = p.cfg.Paths.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}

	baseName := req.BaseName
	if strings.TrimSpace(baseName) == "" {
		baseName = outcome.Title
	}

	written := make([]string, 0, len(pairs))
	exportErr := p.exporter.ExportAll(outcome.Result, baseName, pairs, func(artifact export.Artifact) error {
		path := filepath.Join(outputDir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
			return err
		}
		written = append(written, path)
		stageLogger.Info("wrote export artifact",
			logging.String("path", path),
			logging.Int("bytes", len(artifact.Data)),
		)
		return nil
	})
	return written, exportErr
}

func selectFormats(requested, configured []string) []string {
	if len(requested) > 0 {
		return requested
	}
	return configured
}
