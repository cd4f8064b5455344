package transcribe

import (
	"context"
	"fmt"
)

// interface for audio transcription; returns the service's raw reply text
// which is expected to hold a JSON array of word timings
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// transcription service provider
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// transcription options
type Options struct {
	Language string // Spoken language of the audio, optional hint
	Model    string
	Prompt   string // Extra instructions appended to the request
}

// ServiceError is a failed call to the transcription service.
type ServiceError struct {
	Provider Provider
	Op       string // "upload" or "generate"
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// creates transcriber based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Transcriber, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiTranscriber(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranscriber(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
