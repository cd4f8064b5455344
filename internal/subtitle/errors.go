package subtitle

import "fmt"

// FormatError reports a time string that cannot be turned into an SRT
// timestamp.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Input, e.Reason)
}

// ParseError reports a service response that is not a list of word timings.
// Index is the 1-based position of the offending element, matching the SRT
// block number it would have become; 0 when the failure is not tied to a
// single element.
type ParseError struct {
	Index  int
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	switch {
	case e.Index > 0 && e.Field != "":
		msg = fmt.Sprintf("entry %d: field %q: %s", e.Index, e.Field, e.Reason)
	case e.Index > 0:
		msg = fmt.Sprintf("entry %d: %s", e.Index, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("parse transcript: %s: %v", msg, e.Err)
	}
	return "parse transcript: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TimingError reports a word whose times are out of range or out of order.
// Index is the 1-based SRT block number.
type TimingError struct {
	Index  int
	Word   string
	Reason string
	Err    error
}

func (e *TimingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("entry %d (%q): %s: %v", e.Index, e.Word, e.Reason, e.Err)
	}
	return fmt.Sprintf("entry %d (%q): %s", e.Index, e.Word, e.Reason)
}

func (e *TimingError) Unwrap() error {
	return e.Err
}
