package subtitle

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var transcriptFields = []string{"word", "timeStart", "timeEnd"}

// CleanResponse strips the decoration the transcription service wraps around
// its answer: every backtick and the first "json" language label.
func CleanResponse(raw string) string {
	s := strings.ReplaceAll(raw, "`", "")
	s = strings.Replace(s, "json", "", 1)
	return strings.TrimSpace(s)
}

// ParseTranscript cleans raw service output and parses it into word timings,
// preserving order. Every element must be an object with exactly the string
// fields word, timeStart and timeEnd.
// Invalid UTF-8 is replaced with U+FFFD.
func ParseTranscript(raw string) ([]WordTiming, error) {
	text := CleanResponse(raw)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "\uFFFD")
	}
	if text == "" {
		return nil, &ParseError{Index: 0, Reason: "empty response"}
	}
	if !gjson.Valid(text) {
		return nil, &ParseError{
			Index:  0,
			Reason: "response is not valid JSON (response: " + truncateString(text, 200) + ")",
		}
	}

	root := gjson.Parse(text)
	if !root.IsArray() {
		return nil, &ParseError{Index: 0, Reason: "expected a JSON array of word timings"}
	}

	elements := root.Array()
	entries := make([]WordTiming, 0, len(elements))
	for i, elem := range elements {
		entry, err := parseWordTiming(i+1, elem)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseWordTiming(index int, elem gjson.Result) (WordTiming, error) {
	if !elem.IsObject() {
		return WordTiming{}, &ParseError{Index: index, Reason: "expected an object"}
	}

	var perr *ParseError
	seen := make(map[string]bool, len(transcriptFields))
	elem.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if !isTranscriptField(name) {
			perr = &ParseError{Index: index, Field: name, Reason: "unexpected field"}
			return false
		}
		if seen[name] {
			perr = &ParseError{Index: index, Field: name, Reason: "duplicate field"}
			return false
		}
		seen[name] = true
		return true
	})
	if perr != nil {
		return WordTiming{}, perr
	}

	values := make([]string, len(transcriptFields))
	for i, field := range transcriptFields {
		v := elem.Get(field)
		if !v.Exists() {
			return WordTiming{}, &ParseError{Index: index, Field: field, Reason: "missing"}
		}
		if v.Type != gjson.String {
			return WordTiming{}, &ParseError{Index: index, Field: field, Reason: "must be a string, got " + v.Type.String()}
		}
		values[i] = v.String()
	}

	return WordTiming{
		Word:      values[0],
		TimeStart: values[1],
		TimeEnd:   values[2],
	}, nil
}

func isTranscriptField(name string) bool {
	for _, f := range transcriptFields {
		if f == name {
			return true
		}
	}
	return false
}

// truncates a string to maxLen bytes
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
