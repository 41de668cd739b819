package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scribe/internal/logging"
)

// CleanResult contains the outcome of a stale workspace cleanup.
type CleanResult struct {
	Removed []string
	Errors  []CleanupError
}

// CleanupError pairs a path with its cleanup error.
type CleanupError struct {
	Path  string
	Error error
}

// CleanStale removes entries in workDir older than maxAge. The lock file is
// always skipped. It returns the removed paths and any errors encountered.
func CleanStale(workDir string, maxAge time.Duration, logger *slog.Logger) CleanResult {
	result := CleanResult{}

	workDir = strings.TrimSpace(workDir)
	if workDir == "" || maxAge <= 0 {
		return result
	}

	entries, err := os.ReadDir(workDir)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Errors = append(result.Errors, CleanupError{Path: workDir, Error: err})
		}
		return result
	}

	cutoff := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if entry.Name() == "scribe.lock" {
			continue
		}

		path := filepath.Join(workDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: path, Error: err})
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: path, Error: err})
			if logger != nil {
				logger.Warn("failed to remove stale workspace entry",
					logging.String("path", path),
					logging.Error(err),
				)
			}
			continue
		}
		result.Removed = append(result.Removed, path)
		if logger != nil {
			logger.Info("removed stale workspace entry",
				logging.String("path", path),
				logging.Duration("age", time.Since(info.ModTime())),
			)
		}
	}

	return result
}
