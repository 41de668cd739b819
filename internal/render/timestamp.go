package render

import (
	"fmt"
	"strings"
)

// Timestamp formats a seconds offset as HH:MM:SS.mmm. Hours, minutes, and
// seconds are zero-padded to two digits; the hour field widens past 99
// instead of wrapping. Fractional milliseconds are floored. Negative input
// clamps to zero.
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	millis := int64((seconds - float64(total)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

// SubtitleTimestamp is the SRT flavor of Timestamp: the same rendering with
// the decimal point replaced by a comma. It is a pure post-processing step
// so the two representations can never diverge on the integer portion.
func SubtitleTimestamp(seconds float64) string {
	return strings.Replace(Timestamp(seconds), ".", ",", 1)
}
