package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Great Video", "My_Great_Video"},
		{"What?! A // Title: Part 2", "What_A_Title_Part_2"},
		{"  spaced   out  ", "spaced_out"},
		{"", ""},
		{"***", ""},
	}
	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeTitleTruncates(t *testing.T) {
	long := strings.Repeat("a", 250)
	if got := SanitizeTitle(long); len(got) != 100 {
		t.Fatalf("expected 100 characters, got %d", len(got))
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello_world"},
		{"", "unknown"},
		{"__--", "unknown"},
		{"en-US", "en-us"},
	}
	for _, tt := range tests {
		if got := SanitizeToken(tt.in); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
