package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external tool scribe shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a tool.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Default lists the tools a full transcription run needs.
func Default() []Requirement {
	return []Requirement{
		{Name: "yt-dlp", Command: "yt-dlp", Description: "Downloads audio from media URLs"},
		{Name: "ffmpeg", Command: "ffmpeg", Description: "Normalizes audio to WAV for the engine"},
		{Name: "ffprobe", Command: "ffprobe", Description: "Probes input duration"},
		{Name: "uvx", Command: "uvx", Description: "Runs WhisperX without a local install"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if path, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Available = true
			status.Command = path
		}
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of unavailable non-optional tools.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
