package transcribe

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mgpai22/wordsrt/internal/audio"
	"google.golang.org/genai"
)

func TestBuildWordTimingPrompt(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		contains    []string
		notContains []string
	}{
		{
			name: "defaults",
			opts: Options{},
			contains: []string{
				`"word"`,
				`"timeStart"`,
				`"timeEnd"`,
				`{"word": "text", "timeStart": "0:00.000", "timeEnd": "0:00.000"}`,
			},
			notContains: []string{"The audio is in"},
		},
		{
			name:     "language hint",
			opts:     Options{Language: "Indonesian"},
			contains: []string{"The audio is in Indonesian."},
		},
		{
			name:     "extra prompt",
			opts:     Options{Prompt: "Keep filler words."},
			contains: []string{"Keep filler words."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildWordTimingPrompt(tt.opts)
			for _, s := range tt.contains {
				if !strings.Contains(prompt, s) {
					t.Errorf("prompt missing %q", s)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(prompt, s) {
					t.Errorf("prompt should not contain %q", s)
				}
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		result  *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{
			name:    "nil response",
			result:  nil,
			wantErr: true,
		},
		{
			name:    "no candidates",
			result:  &genai.GenerateContentResponse{},
			wantErr: true,
		},
		{
			name: "candidate without content",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			wantErr: true,
		},
		{
			name: "joins text parts",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{Text: "```json\n["},
						nil,
						{Text: "]\n```"},
					}},
				}},
			},
			want: "```json\n[]\n```",
		},
		{
			name: "skips empty candidate",
			result: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{}},
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "[]"}}}},
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "ignored"}}}},
				},
			},
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.result)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("responseText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeminiTranscribeMissingFile(t *testing.T) {
	ctx := context.Background()
	transcriber, err := NewGeminiTranscriber(ctx, "fake-key", Options{})
	if err != nil {
		t.Fatalf("NewGeminiTranscriber error: %v", err)
	}

	_, err = transcriber.Transcribe(ctx, filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, audio.ErrInputNotFound) {
		t.Errorf("Transcribe(missing) = %v, want ErrInputNotFound", err)
	}
}

func TestCleanupContextOutlivesParent(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-parent.Done()

	ctx, stop := cleanupContext(parent)
	defer stop()

	if err := ctx.Err(); err != nil {
		t.Fatalf("cleanup context already done: %v", err)
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("cleanup context has no deadline")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > uploadCleanupTimeout {
		t.Errorf("remaining = %v, want within (0, %v]", remaining, uploadCleanupTimeout)
	}
}
