package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateWhisperX(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if c.Audio.SampleRate < 8000 {
		return fmt.Errorf("audio.sample_rate must be at least 8000, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Channels != 1 && c.Audio.Channels != 2 {
		return fmt.Errorf("audio.channels must be 1 or 2, got %d", c.Audio.Channels)
	}
	if c.Audio.MaxInputMiB < 1 {
		return fmt.Errorf("audio.max_input_mib must be positive, got %d", c.Audio.MaxInputMiB)
	}
	return nil
}

func (c *Config) validateWhisperX() error {
	switch c.WhisperX.Task {
	case "transcribe", "translate":
		return nil
	default:
		return fmt.Errorf("whisperx.task must be transcribe or translate, got %q", c.WhisperX.Task)
	}
}

func (c *Config) validateExport() error {
	known := map[string]bool{"txt": true, "docx": true, "srt": true, "vtt": true}
	for _, format := range c.Export.Formats {
		if !known[format] {
			return fmt.Errorf("export.formats: unsupported format %q", format)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
