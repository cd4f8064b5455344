package transcribe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mgpai22/wordsrt/internal/audio"
	"github.com/mgpai22/wordsrt/internal/subtitle"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "whisper-1"

// implements Transcriber interface using OpenAI Audio API
type OpenAITranscriber struct {
	client  openai.Client
	model   string
	options Options
}

// word from OpenAI Whisper verbose_json response
type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// verbose_json response structure from Whisper
type whisperVerboseResponse struct {
	Text  string        `json:"text"`
	Words []whisperWord `json:"words"`
}

func NewOpenAITranscriber(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAITranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAITranscriber{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// transcribes the file with word timestamps and returns them as the same
// JSON array shape the Gemini prompt asks for
func (t *OpenAITranscriber) Transcribe(
	ctx context.Context,
	audioPath string,
) (string, error) {
	if err := audio.CheckFile(audioPath); err != nil {
		return "", err
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:                   file,
		Model:                  openai.AudioModel(t.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"word"},
	}

	if t.options.Language != "" {
		params.Language = openai.String(t.options.Language)
	}

	if t.options.Prompt != "" {
		params.Prompt = openai.String(t.options.Prompt)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", &ServiceError{Provider: ProviderOpenAI, Op: "generate", Err: err}
	}

	text, err := wordsToTranscript(resp.RawJSON())
	if err != nil {
		return "", &ServiceError{Provider: ProviderOpenAI, Op: "generate", Err: err}
	}

	return text, nil
}

// converts a verbose_json body into a JSON array of word timings
func wordsToTranscript(rawJSON string) (string, error) {
	if rawJSON == "" {
		return "", errors.New("empty response")
	}

	var verboseResp whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &verboseResp); err != nil {
		return "", fmt.Errorf("failed to parse verbose_json response: %w", err)
	}

	if len(verboseResp.Words) == 0 && strings.TrimSpace(verboseResp.Text) != "" {
		return "", errors.New("response has text but no word timestamps")
	}

	entries := make([]subtitle.WordTiming, 0, len(verboseResp.Words))
	for _, w := range verboseResp.Words {
		word := strings.TrimSpace(w.Word)
		if word == "" {
			continue
		}
		entries = append(entries, subtitle.WordTiming{
			Word:      word,
			TimeStart: secondsToClock(w.Start),
			TimeEnd:   secondsToClock(w.End),
		})
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to encode word timings: %w", err)
	}

	return string(out), nil
}

// formats seconds as "m:ss.mmm"
func secondsToClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	minutes := totalMillis / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf("%d:%02d.%03d", minutes, secs, millis)
}
