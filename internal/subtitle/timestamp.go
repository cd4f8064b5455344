package subtitle

import (
	"strings"
)

// FormatTimestamp converts a "minutes:seconds[.fraction]" string into an SRT
// timestamp "00:MM:SS,mmm".
//
// The hour field is always "00". Fractions shorter than three digits are
// right-padded with zeros ("5" -> "500"); longer fractions, minutes or
// seconds are passed through as-is. Fields after the second ':' or '.' are
// ignored.
func FormatTimestamp(s string) (string, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return "", &FormatError{Input: s, Reason: "missing ':' between minutes and seconds"}
	}

	minutes := parts[0]
	secParts := strings.Split(parts[1], ".")
	seconds := secParts[0]

	millis := "0"
	if len(secParts) > 1 && secParts[1] != "" {
		millis = secParts[1]
	}
	for len(millis) < 3 {
		millis += "0"
	}

	return "00:" + padLeft(minutes, 2) + ":" + padLeft(seconds, 2) + "," + millis, nil
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
