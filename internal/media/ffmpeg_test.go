package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/services"
)

func TestNormalizeBuildsExpectedArgs(t *testing.T) {
	p := NewProcessor(Config{SampleRate: 16000, Channels: 1})

	var gotName string
	var gotArgs []string
	p.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return nil, nil
	})

	dest, err := p.Normalize(context.Background(), "/tmp/input.mp3", "/tmp/work")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if dest != "/tmp/work/input.wav" {
		t.Fatalf("unexpected dest: %q", dest)
	}
	if gotName != "ffmpeg" {
		t.Fatalf("unexpected binary: %q", gotName)
	}

	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"-i /tmp/input.mp3", "-ac 1", "-ar 16000", "-c:a pcm_s16le", "/tmp/work/input.wav"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %v", want, gotArgs)
		}
	}
}

func TestNormalizeEmptySourceFails(t *testing.T) {
	p := NewProcessor(Config{})
	if _, err := p.Normalize(context.Background(), "  ", "/tmp"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeWrapsToolFailure(t *testing.T) {
	p := NewProcessor(Config{})
	p.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("Unknown decoder"), errors.New("exit status 1")
	})

	_, err := p.Normalize(context.Background(), "/tmp/input.mp3", "/tmp")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Unknown decoder") {
		t.Fatalf("expected tool output in error, got %v", err)
	}
}

func TestDurationParsesProbeOutput(t *testing.T) {
	p := NewProcessor(Config{})
	p.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name != "ffprobe" {
			t.Fatalf("unexpected binary: %q", name)
		}
		return []byte(`{"format": {"duration": "125.500000", "size": "2048000"}}`), nil
	})

	duration, err := p.Duration(context.Background(), "/tmp/input.wav")
	if err != nil {
		t.Fatalf("Duration returned error: %v", err)
	}
	if duration != 125.5 {
		t.Fatalf("unexpected duration: %v", duration)
	}
}

func TestDurationRejectsMalformedPayload(t *testing.T) {
	p := NewProcessor(Config{})
	p.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(`{"format": {}}`), nil
	})
	if _, err := p.Duration(context.Background(), "/tmp/input.wav"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCheckInput(t *testing.T) {
	allowed := []string{".mp3", ".wav", ".m4a", ".flac"}

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckInput(path, allowed, 2048); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if err := CheckInput(path, allowed, 512); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected size rejection, got %v", err)
	}
	if err := CheckInput("song.ogg", allowed, 0); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected extension rejection, got %v", err)
	}
}
