package transcribe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mgpai22/wordsrt/internal/audio"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

const uploadCleanupTimeout = 30 * time.Second

// implements Transcriber interface using Google Gemini
type GeminiTranscriber struct {
	client  *genai.Client
	model   string
	options Options
}

func NewGeminiTranscriber(ctx context.Context, apiKey string, opts Options) (*GeminiTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiTranscriber{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// uploads the audio file and asks the model for per-word timings
func (t *GeminiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := audio.CheckFile(audioPath); err != nil {
		return "", err
	}

	uploadedFile, err := t.client.Files.UploadFromPath(ctx, audioPath, &genai.UploadFileConfig{
		MIMEType: audio.MIMEType(audioPath),
	})
	if err != nil {
		return "", &ServiceError{Provider: ProviderGemini, Op: "upload", Err: err}
	}

	defer func() {
		cleanupCtx, cancel := cleanupContext(ctx)
		defer cancel()
		_, _ = t.client.Files.Delete(cleanupCtx, uploadedFile.Name, nil)
	}()

	parts := []*genai.Part{
		genai.NewPartFromURI(uploadedFile.URI, uploadedFile.MIMEType),
		genai.NewPartFromText(t.buildTranscriptionPrompt()),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", &ServiceError{Provider: ProviderGemini, Op: "generate", Err: err}
	}

	text, err := responseText(result)
	if err != nil {
		return "", &ServiceError{Provider: ProviderGemini, Op: "generate", Err: err}
	}

	return text, nil
}

// detached from ctx so an expired deadline still removes the upload
func cleanupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), uploadCleanupTimeout)
}

// creates the prompt for word-level transcription
func (t *GeminiTranscriber) buildTranscriptionPrompt() string {
	return buildWordTimingPrompt(t.options)
}

func buildWordTimingPrompt(opts Options) string {
	var sb strings.Builder

	sb.WriteString("Build an array of objects from this audio, one object per spoken word, in the order the words are spoken. ")
	sb.WriteString("Each object has the keys \"word\", \"timeStart\" and \"timeEnd\": ")
	sb.WriteString("\"word\" is the word that was spoken, \"timeStart\" is the time the word starts and \"timeEnd\" is the time it ends. ")
	sb.WriteString("Every key and every value must be a string, and times use the minutes:seconds.milliseconds notation. ")
	sb.WriteString(`Always keep exactly this object shape: {"word": "text", "timeStart": "0:00.000", "timeEnd": "0:00.000"}. `)

	if opts.Language != "" {
		sb.WriteString(fmt.Sprintf("The audio is in %s. ", opts.Language))
	}

	if opts.Prompt != "" {
		sb.WriteString(opts.Prompt)
		sb.WriteString(" ")
	}

	sb.WriteString("Return the JSON array.")

	return sb.String()
}

// concatenates the text parts of the first candidate that has any
func responseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", errors.New("empty response from Gemini")
	}

	var text string
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			break
		}
	}

	if text == "" {
		return "", errors.New("no text in Gemini response")
	}

	return text, nil
}
