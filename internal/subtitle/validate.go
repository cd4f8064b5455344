package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var srtTimestampRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// ValidateTimings checks that every word fits the "00" hour SRT assumption and
// starts no later than it ends. Rendering without it keeps legacy output,
// including malformed timestamps.
func ValidateTimings(entries []WordTiming) error {
	for i, entry := range entries {
		start, err := timestampDuration(entry.TimeStart)
		if err != nil {
			return &TimingError{Index: i + 1, Word: entry.Word, Reason: "start", Err: err}
		}
		end, err := timestampDuration(entry.TimeEnd)
		if err != nil {
			return &TimingError{Index: i + 1, Word: entry.Word, Reason: "end", Err: err}
		}
		if start > end {
			return &TimingError{
				Index:  i + 1,
				Word:   entry.Word,
				Reason: fmt.Sprintf("starts at %s after it ends at %s", entry.TimeStart, entry.TimeEnd),
			}
		}
	}
	return nil
}

// normalizes a loose time string and converts it to a duration
func timestampDuration(s string) (time.Duration, error) {
	formatted, err := FormatTimestamp(s)
	if err != nil {
		return 0, err
	}

	matches := srtTimestampRegex.FindStringSubmatch(formatted)
	if matches == nil {
		return 0, fmt.Errorf("%q does not normalize to HH:MM:SS,mmm (got %q)", s, formatted)
	}

	return parseSRTTimestamp(matches[1], matches[2], matches[3], matches[4])
}

func parseSRTTimestamp(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	if m > 59 {
		return 0, fmt.Errorf("minutes %d out of range", m)
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	if s > 59 {
		return 0, fmt.Errorf("seconds %d out of range", s)
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
