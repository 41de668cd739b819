package whisperx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/services"
	"scribe/internal/transcript"
)

const sampleOutput = `{
  "segments": [
    {
      "text": " Hello world.",
      "start": 0.0,
      "end": 2.5,
      "words": [
        {"word": "Hello", "start": 0.0, "end": 1.0, "score": 0.98},
        {"word": "world.", "start": 1.2, "end": 2.5, "score": 0.95}
      ]
    },
    {
      "text": " Second segment.",
      "start": 3.0,
      "end": 5.0,
      "words": [
        {"word": "Second", "start": 3.0, "end": 4.0, "score": 0.9},
        {"word": "segment.", "start": 4.1, "end": 5.0, "score": 0.88}
      ]
    }
  ],
  "language": "en"
}`

func TestTranscribeParsesOutput(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "audio.wav")
	if err := os.WriteFile(source, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	outputDir := filepath.Join(dir, "out")

	var gotName string
	var gotArgs []string
	svc := NewService(Config{Model: "small", Language: "en"})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		path := filepath.Join(outputDir, "audio.json")
		if err := os.WriteFile(path, []byte(sampleOutput), 0o644); err != nil {
			return nil, err
		}
		return []byte("ok"), nil
	})

	var fractions []float64
	result, err := svc.Transcribe(context.Background(), source, outputDir, func(fraction float64, message string) {
		fractions = append(fractions, fraction)
	})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if gotName != UVXCommand {
		t.Errorf("command = %q, want %q", gotName, UVXCommand)
	}
	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"whisperx", "--model small", "--language en", "--device cpu", "--compute_type float32"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}

	if result.Text != "Hello world. Second segment." {
		t.Errorf("Text = %q", result.Text)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("Segments = %d, want 2", len(result.Segments))
	}
	if result.Segments[1].ID != 1 || result.Segments[1].Start != 3.0 {
		t.Errorf("second segment = %+v", result.Segments[1])
	}
	if len(result.Words) != 4 {
		t.Fatalf("Words = %d, want 4", len(result.Words))
	}
	if result.Words[0].Text != "Hello" || result.Words[0].Confidence != 0.98 {
		t.Errorf("first word = %+v", result.Words[0])
	}
	if result.Language != "en" {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if result.Duration != 5.0 {
		t.Errorf("Duration = %v, want 5.0", result.Duration)
	}

	if len(fractions) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(fractions); i++ {
		if fractions[i] < fractions[i-1] {
			t.Errorf("progress decreased: %v", fractions)
		}
	}
	if fractions[len(fractions)-1] != 1.0 {
		t.Errorf("final fraction = %v, want 1.0", fractions[len(fractions)-1])
	}
}

func TestTranscribeCommandFailure(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "audio.wav")
	if err := os.WriteFile(source, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(Config{})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("CUDA out of memory"), errors.New("exit status 1")
	})

	_, err := svc.Transcribe(context.Background(), source, dir, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Errorf("error = %v, want ErrExternalTool", err)
	}
	if !strings.Contains(err.Error(), "CUDA out of memory") {
		t.Errorf("error missing tool output: %v", err)
	}
}

func TestTranscribeEmptySource(t *testing.T) {
	svc := NewService(Config{})
	_, err := svc.Transcribe(context.Background(), "", t.TempDir(), nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestBuildArgsCUDA(t *testing.T) {
	svc := NewService(Config{Model: "large-v3", CUDAEnabled: true})
	args := svc.buildArgs("/tmp/in.wav", "/tmp/out")
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--index-url "+CUDAIndexURL) {
		t.Errorf("missing CUDA index url: %s", joined)
	}
	if !strings.Contains(joined, "--device cuda") {
		t.Errorf("missing cuda device: %s", joined)
	}
	if strings.Contains(joined, "--compute_type") {
		t.Errorf("compute_type should be omitted on CUDA: %s", joined)
	}
}

func TestBuildArgsNormalizesLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"eng", "en"},
		{"German", "de"},
		{"fr", "fr"},
		{"xx", "xx"},
	}
	for _, tt := range tests {
		svc := NewService(Config{Language: tt.input})
		joined := strings.Join(svc.buildArgs("/tmp/in.wav", "/tmp/out"), " ")
		if !strings.Contains(joined, "--language "+tt.want) {
			t.Errorf("language %q: args = %s, want --language %s", tt.input, joined, tt.want)
		}
	}
}

func TestLoadResultMissingFile(t *testing.T) {
	_, err := LoadResult(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadResultNoLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte(`{"segments": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err := LoadResult(path)
	if err != nil {
		t.Fatalf("LoadResult() error = %v", err)
	}
	if result.Language != transcript.LanguageUnknown {
		t.Errorf("Language = %q, want %q", result.Language, transcript.LanguageUnknown)
	}
	if result.Duration != 0 {
		t.Errorf("Duration = %v, want 0", result.Duration)
	}
}
