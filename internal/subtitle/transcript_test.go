package subtitle

import (
	"errors"
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON",
			input: `[{"word":"hi"}]`,
			want:  `[{"word":"hi"}]`,
		},
		{
			name:  "json code fence",
			input: "```json\n[{\"word\":\"hi\"}]\n```",
			want:  `[{"word":"hi"}]`,
		},
		{
			name:  "plain code fence",
			input: "```\n[{\"word\":\"hi\"}]\n```",
			want:  `[{"word":"hi"}]`,
		},
		{
			name:  "only the first json label is removed",
			input: "```json\n[{\"word\":\"json\"}]\n```",
			want:  `[{"word":"json"}]`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n[]\n```\n  ",
			want:  `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.input); got != tt.want {
				t.Errorf("CleanResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTranscript(t *testing.T) {
	plain := `[{"word":"hi","timeStart":"0:00.000","timeEnd":"0:00.500"}]`
	want := []WordTiming{{Word: "hi", TimeStart: "0:00.000", TimeEnd: "0:00.500"}}

	got, err := ParseTranscript(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTranscript() = %+v, want %+v", got, want)
	}

	fenced, err := ParseTranscript("```json\n" + plain + "\n```")
	if err != nil {
		t.Fatalf("unexpected error for fenced input: %v", err)
	}
	if !reflect.DeepEqual(fenced, got) {
		t.Errorf("fenced parse = %+v, want %+v", fenced, got)
	}
}

func TestParseTranscriptPreservesOrder(t *testing.T) {
	raw := "```json\n" + `[
		{"word": "zeta", "timeStart": "0:02.0", "timeEnd": "0:02.4"},
		{"word": "alpha", "timeStart": "0:00.0", "timeEnd": "0:00.4"},
		{"word": "alpha", "timeStart": "0:01.0", "timeEnd": "0:01.4"}
	]` + "\n```"

	got, err := ParseTranscript(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	words := make([]string, len(got))
	for i, e := range got {
		words[i] = e.Word
	}
	if !reflect.DeepEqual(words, []string{"zeta", "alpha", "alpha"}) {
		t.Errorf("words = %v, want input order", words)
	}
	if got[1].TimeStart != "0:00.0" {
		t.Errorf("TimeStart = %q, want verbatim %q", got[1].TimeStart, "0:00.0")
	}
}

func TestParseTranscriptEmptyArray(t *testing.T) {
	got, err := ParseTranscript("```json\n[]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestParseTranscriptErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex int
		wantField string
	}{
		{
			name:      "empty response",
			input:     "``` ```",
			wantIndex: 0,
		},
		{
			name:      "not JSON",
			input:     "Sorry, I could not process this audio.",
			wantIndex: 0,
		},
		{
			name:      "truncated JSON",
			input:     `[{"word":"hi","timeStart":"0:00.000"`,
			wantIndex: 0,
		},
		{
			name:      "object instead of array",
			input:     `{"word":"hi","timeStart":"0:00.000","timeEnd":"0:00.500"}`,
			wantIndex: 0,
		},
		{
			name:      "element is not an object",
			input:     `[{"word":"hi","timeStart":"0:00.000","timeEnd":"0:00.500"}, "oops"]`,
			wantIndex: 2,
		},
		{
			name:      "missing field",
			input:     `[{"word":"hi","timeStart":"0:00.000"}]`,
			wantIndex: 1,
			wantField: "timeEnd",
		},
		{
			name:      "numeric time",
			input:     `[{"word":"hi","timeStart":0.5,"timeEnd":"0:00.500"}]`,
			wantIndex: 1,
			wantField: "timeStart",
		},
		{
			name:      "unexpected field",
			input:     `[{"word":"hi","timeStart":"0:00.000","timeEnd":"0:00.500","speaker":"A"}]`,
			wantIndex: 1,
			wantField: "speaker",
		},
		{
			name:      "duplicate field",
			input:     `[{"word":"first","word":"second","timeStart":"0:00","timeEnd":"0:01"}]`,
			wantIndex: 1,
			wantField: "word",
		},
		{
			name: "duplicate field in later element",
			input: `[{"word":"ok","timeStart":"0:00","timeEnd":"0:01"},` +
				`{"word":"hi","timeStart":"0:01","timeStart":"0:02","timeEnd":"0:03"}]`,
			wantIndex: 2,
			wantField: "timeStart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTranscript(tt.input)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", pe.Index, tt.wantIndex)
			}
			if pe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", pe.Field, tt.wantField)
			}
		})
	}
}

func TestParseTranscriptInvalidUTF8(t *testing.T) {
	raw := "[{\"word\":\"a\xffb\",\"timeStart\":\"0:00\",\"timeEnd\":\"0:01\"}]"

	got, err := ParseTranscript(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Word != "a\uFFFDb" {
		t.Errorf("Word = %q, want %q", got[0].Word, "a\uFFFDb")
	}
	if !utf8.ValidString(got[0].Word) {
		t.Error("word is not valid UTF-8")
	}
}
