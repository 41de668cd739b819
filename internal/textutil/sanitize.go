package textutil

import (
	"strings"
	"unicode"
)

// maxTitleLength bounds sanitized titles so derived filenames stay portable.
const maxTitleLength = 100

// SanitizeTitle converts a media title into a filename-safe base name.
// Letters, digits, spaces, hyphens, and underscores are kept; runs of
// whitespace collapse to a single space; spaces become underscores and the
// result is truncated to a portable length.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	safe := strings.Join(strings.Fields(b.String()), " ")
	safe = strings.ReplaceAll(safe, " ", "_")
	if len(safe) > maxTitleLength {
		safe = safe[:maxTitleLength]
	}
	return safe
}

// SanitizeToken converts a string to a lowercase filesystem-safe token.
// Letters are lowercased, digits and hyphens/underscores are kept, everything
// else becomes an underscore. Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}
