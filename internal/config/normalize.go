package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeAudio(); err != nil {
		return err
	}
	c.normalizeWhisperX()
	c.normalizeExport()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeWorkspace()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DownloadDir, err = expandPath(c.Paths.DownloadDir); err != nil {
		return fmt.Errorf("paths.download_dir: %w", err)
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAudio() error {
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = defaultSampleRate
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = defaultChannels
	}
	if c.Audio.MaxInputMiB == 0 {
		c.Audio.MaxInputMiB = defaultMaxInputMiB
	}
	if len(c.Audio.AllowedExtensions) == 0 {
		c.Audio.AllowedExtensions = defaultAllowedExtensions()
	}
	for i, ext := range c.Audio.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("audio.allowed_extensions: empty entry at index %d", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Audio.AllowedExtensions[i] = ext
	}
	return nil
}

func (c *Config) normalizeWhisperX() {
	c.WhisperX.Model = strings.TrimSpace(c.WhisperX.Model)
	if c.WhisperX.Model == "" {
		c.WhisperX.Model = defaultWhisperXModel
	}
	c.WhisperX.Language = strings.TrimSpace(c.WhisperX.Language)
	c.WhisperX.Task = strings.ToLower(strings.TrimSpace(c.WhisperX.Task))
	if c.WhisperX.Task == "" {
		c.WhisperX.Task = defaultWhisperXTask
	}
}

func (c *Config) normalizeExport() {
	c.Export.DefaultFilenamePrefix = strings.TrimSpace(c.Export.DefaultFilenamePrefix)
	if c.Export.DefaultFilenamePrefix == "" {
		c.Export.DefaultFilenamePrefix = defaultFilenamePrefix
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = defaultExportFormats()
	}
	for i, format := range c.Export.Formats {
		c.Export.Formats[i] = strings.ToLower(strings.TrimSpace(format))
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeWorkspace() {
	if c.Workspace.TempMaxAgeMinutes <= 0 {
		c.Workspace.TempMaxAgeMinutes = defaultTempMaxAgeMinutes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// ExpandPath resolves ~ and relative paths to absolute ones. An empty path
// stays empty.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return abs, nil
}
