package config

const (
	defaultDownloadDir       = "~/.local/share/scribe/downloads"
	defaultWorkDir           = "~/.local/share/scribe/work"
	defaultOutputDir         = "~/scribe"
	defaultLogDir            = "~/.local/share/scribe/logs"
	defaultSampleRate        = 16000
	defaultChannels          = 1
	defaultMaxInputMiB       = 200
	defaultWhisperXModel     = "large-v3"
	defaultWhisperXTask      = "transcribe"
	defaultFilenamePrefix    = "transcription"
	defaultHistoryPath       = "~/.local/share/scribe/history.db"
	defaultTempMaxAgeMinutes = 60
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

func defaultAllowedExtensions() []string {
	return []string{".mp3", ".wav", ".m4a", ".flac"}
}

func defaultExportFormats() []string {
	return []string{"txt", "docx", "srt", "vtt"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DownloadDir: defaultDownloadDir,
			WorkDir:     defaultWorkDir,
			OutputDir:   defaultOutputDir,
			LogDir:      defaultLogDir,
		},
		Audio: Audio{
			SampleRate:        defaultSampleRate,
			Channels:          defaultChannels,
			MaxInputMiB:       defaultMaxInputMiB,
			AllowedExtensions: defaultAllowedExtensions(),
		},
		WhisperX: WhisperX{
			Model: defaultWhisperXModel,
			Task:  defaultWhisperXTask,
		},
		Export: Export{
			DefaultFilenamePrefix: defaultFilenamePrefix,
			Formats:               defaultExportFormats(),
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Workspace: Workspace{
			TempMaxAgeMinutes: defaultTempMaxAgeMinutes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
