package render

import "testing"

func TestTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00.000"},
		{125.5, "00:02:05.500"},
		{3661.001, "01:01:01.001"},
		{3600, "01:00:00.000"},
		{90061.75, "25:01:01.750"},
		{360000, "100:00:00.000"},
		{-1.5, "00:00:00.000"},
	}

	for _, tt := range tests {
		if got := Timestamp(tt.seconds); got != tt.want {
			t.Errorf("Timestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSubtitleTimestampMatchesBaseFormatter(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{125.5, "00:02:05,500"},
		{7325.25, "02:02:05,250"},
	}

	for _, tt := range tests {
		if got := SubtitleTimestamp(tt.seconds); got != tt.want {
			t.Errorf("SubtitleTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
