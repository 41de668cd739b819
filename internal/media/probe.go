package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"scribe/internal/services"
)

// probePayload is the subset of ffprobe JSON output the processor needs.
type probePayload struct {
	Format struct {
		Duration string `json:"duration"`
		Size     string `json:"size"`
	} `json:"format"`
}

// Duration returns the audio duration in seconds as reported by ffprobe.
func (p *Processor) Duration(ctx context.Context, path string) (float64, error) {
	if strings.TrimSpace(path) == "" {
		return 0, services.Wrap(services.ErrValidation, "media", "probe", "path required", nil)
	}

	args := []string{"-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path}
	output, err := p.run(ctx, p.cfg.FFprobeBinary, args...)
	if err != nil {
		detail := strings.TrimSpace(string(output))
		return 0, services.Wrap(services.ErrExternalTool, "media", "probe", detail, err)
	}

	var payload probePayload
	if err := json.Unmarshal(output, &payload); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(payload.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe parse duration %q: %w", payload.Format.Duration, err)
	}
	return duration, nil
}

// CheckInput validates an upload before processing: the extension must be
// allowed and the file must not exceed maxBytes (0 disables the size check).
func CheckInput(path string, allowedExtensions []string, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(path))
	allowed := false
	for _, candidate := range allowedExtensions {
		if ext == candidate {
			allowed = true
			break
		}
	}
	if !allowed {
		return services.Wrap(services.ErrValidation, "media", "check input",
			fmt.Sprintf("unsupported extension %q (allowed: %s)", ext, strings.Join(allowedExtensions, ", ")), nil)
	}

	if maxBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
		if info.Size() > maxBytes {
			return services.Wrap(services.ErrValidation, "media", "check input",
				fmt.Sprintf("file is %d bytes, limit is %d", info.Size(), maxBytes), nil)
		}
	}
	return nil
}
