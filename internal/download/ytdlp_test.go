package download

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scribe/internal/services"
)

func TestInfoParsesMetadata(t *testing.T) {
	d := NewDownloader("")
	d.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name != "yt-dlp" {
			t.Fatalf("unexpected binary: %q", name)
		}
		joined := strings.Join(args, " ")
		if !strings.Contains(joined, "-J") || !strings.Contains(joined, "--skip-download") {
			t.Fatalf("unexpected args: %v", args)
		}
		return []byte(`{"id": "abc123", "title": "A Great Talk", "duration": 300.5, "uploader": "Speaker"}`), nil
	})

	info, err := d.Info(context.Background(), "https://example.com/watch?v=abc123")
	if err != nil {
		t.Fatalf("Info returned error: %v", err)
	}
	if info.Title != "A Great Talk" || info.Duration != 300.5 || info.ID != "abc123" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if got := info.SafeTitle(); got != "A_Great_Talk" {
		t.Fatalf("unexpected safe title: %q", got)
	}
}

func TestSafeTitleFallsBackToID(t *testing.T) {
	info := VideoInfo{ID: "abc123", Title: "???"}
	if got := info.SafeTitle(); got != "abc123" {
		t.Fatalf("unexpected safe title: %q", got)
	}
}

func TestAudioReturnsPrintedPath(t *testing.T) {
	d := NewDownloader("")
	d.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("some progress noise\n/downloads/abc123.wav\n"), nil
	})

	path, err := d.Audio(context.Background(), "https://example.com/v", t.TempDir())
	if err != nil {
		t.Fatalf("Audio returned error: %v", err)
	}
	if path != "/downloads/abc123.wav" {
		t.Fatalf("unexpected path: %q", path)
	}
}

func TestAudioWrapsToolFailure(t *testing.T) {
	d := NewDownloader("")
	d.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("ERROR: Video unavailable"), errors.New("exit status 1")
	})

	_, err := d.Audio(context.Background(), "https://example.com/v", t.TempDir())
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Video unavailable") {
		t.Fatalf("expected tool output in error: %v", err)
	}
}

func TestEmptyURLRejected(t *testing.T) {
	d := NewDownloader("")
	if _, err := d.Info(context.Background(), ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := d.Audio(context.Background(), " ", t.TempDir()); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
