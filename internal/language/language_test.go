package language

import "testing"

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"EN", "en"},
		{"es", "es"},
		// 3-letter codes convert
		{"eng", "en"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"deu", "de"},
		{"ger", "de"},
		{"zho", "zh"},
		{"chi", "zh"},
		{"ukr", "uk"},
		// Word forms
		{"english", "en"},
		{"German", "de"},
		{" turkish ", "tr"},
		// Unknown 2-letter codes pass through
		{"xx", "xx"},
		// Unrecognized longer input drops out
		{"klingon", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToISO2(tt.input); got != tt.expected {
			t.Errorf("ToISO2(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"deu", "German"},
		{"japanese", "Japanese"},
		{"", "Unknown"},
		{"  ", "Unknown"},
		{"xq", "XQ"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
