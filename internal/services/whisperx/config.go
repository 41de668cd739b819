package whisperx

// Config captures runtime settings for WhisperX transcription.
type Config struct {
	// Model is the WhisperX model to use (e.g., "large-v3").
	Model string
	// CUDAEnabled enables GPU acceleration.
	CUDAEnabled bool
	// Language forces a transcription language; empty means auto-detect.
	Language string
	// Task is "transcribe" or "translate".
	Task string
}

// WhisperX configuration constants.
const (
	DefaultModel   = "large-v3"
	DefaultTask    = "transcribe"
	CUDAIndexURL   = "https://download.pytorch.org/whl/cu128"
	PypiIndexURL   = "https://pypi.org/simple"
	BatchSize      = "4"
	OutputFormat   = "json"
	CPUDevice      = "cpu"
	CUDADevice     = "cuda"
	CPUComputeType = "float32"
)

// UVXCommand is the launcher used to run WhisperX without a local install.
const UVXCommand = "uvx"
