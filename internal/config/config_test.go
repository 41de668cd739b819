package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"scribe/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantWork := filepath.Join(tempHome, ".local", "share", "scribe", "work")
	if cfg.Paths.WorkDir != wantWork {
		t.Fatalf("unexpected work dir: got %q want %q", cfg.Paths.WorkDir, wantWork)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Fatalf("unexpected sample rate: %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 1 {
		t.Fatalf("unexpected channels: %d", cfg.Audio.Channels)
	}
	if cfg.WhisperX.Model != "large-v3" {
		t.Fatalf("unexpected model: %q", cfg.WhisperX.Model)
	}
	if cfg.WhisperX.CUDAEnabled {
		t.Fatal("expected CUDA disabled by default")
	}
	if cfg.Export.DefaultFilenamePrefix != "transcription" {
		t.Fatalf("unexpected filename prefix: %q", cfg.Export.DefaultFilenamePrefix)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.Workspace.TempMaxAgeMinutes != 60 {
		t.Fatalf("unexpected temp max age: %d", cfg.Workspace.TempMaxAgeMinutes)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DownloadDir, cfg.Paths.WorkDir, cfg.Paths.OutputDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[whisperx]
model = "small"
cuda_enabled = true
language = "de"

[audio]
sample_rate = 22050
allowed_extensions = ["MP3", "ogg"]

[export]
default_filename_prefix = "meeting"
formats = ["txt", "srt"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.WhisperX.Model != "small" || !cfg.WhisperX.CUDAEnabled || cfg.WhisperX.Language != "de" {
		t.Fatalf("whisperx overrides not applied: %+v", cfg.WhisperX)
	}
	if cfg.Audio.SampleRate != 22050 {
		t.Fatalf("unexpected sample rate: %d", cfg.Audio.SampleRate)
	}
	// Extensions are normalized to lowercase with a leading dot.
	if got := cfg.Audio.AllowedExtensions; len(got) != 2 || got[0] != ".mp3" || got[1] != ".ogg" {
		t.Fatalf("unexpected extensions: %v", got)
	}
	if cfg.Export.DefaultFilenamePrefix != "meeting" {
		t.Fatalf("unexpected prefix: %q", cfg.Export.DefaultFilenamePrefix)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad task", "[whisperx]\ntask = \"summarize\"\n"},
		{"bad sample rate", "[audio]\nsample_rate = 4000\n"},
		{"bad channels", "[audio]\nchannels = 6\n"},
		{"bad export format", "[export]\nformats = [\"pdf\"]\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}
}
