package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgpai22/wordsrt/internal/audio"
	"github.com/mgpai22/wordsrt/internal/config"
	"github.com/mgpai22/wordsrt/internal/subtitle"
	"github.com/mgpai22/wordsrt/internal/transcribe"
	"github.com/spf13/cobra"
)

// swapped out in tests
var newTranscriber = transcribe.Factory

var generateCmd = &cobra.Command{
	Use:   "generate [audio_file]",
	Short: "Generate word-level subtitles for an audio file",
	Long: `Generate word-level SRT subtitles for the specified audio file using AI transcription.

The audio is uploaded to the transcription service, which returns the spoken
words with their start and end times. Each word becomes one subtitle block.

When no audio file is given, the command asks for one (and for the output
path) interactively. The raw service response is saved next to the output
for inspection (data.txt by default) and can be re-rendered later with
"wordsrt render".

Examples:
  wordsrt generate
  wordsrt generate my-audio.wav
  wordsrt generate talk.mp3 -o talk.srt --language indonesian
  wordsrt generate talk.wav --provider openai --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("provider", "p", "", "Transcription provider (gemini, openai); default from WORDSRT_PROVIDER or gemini")
	generateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY env var)")
	generateCmd.Flags().
		String("model", "", "Model to use for transcription (provider-specific default)")
	generateCmd.Flags().
		String("prompt", "", "Additional instructions for the transcription service")
	generateCmd.Flags().
		String("raw-output", "", "Where to save the raw service response (default from WORDSRT_RAW_OUTPUT or data.txt)")
	generateCmd.Flags().
		Bool("no-raw-output", false, "Do not save the raw service response")
	generateCmd.Flags().
		Bool("strict", false, "Reject words whose times are out of order or beyond 59:59")
	generateCmd.Flags().
		Duration("timeout", 0, "Give up on the transcription service after this long (0 waits forever)")
}

// settings for turning one service response into an SRT file
type subtitleJob struct {
	OutputPath string
	RawPath    string // empty disables the raw dump
	Strict     bool
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	prompt, _ := cmd.Flags().GetString("prompt")
	rawPath, _ := cmd.Flags().GetString("raw-output")
	noRaw, _ := cmd.Flags().GetBool("no-raw-output")
	strict, _ := cmd.Flags().GetBool("strict")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if providerStr == "" {
		providerStr = cfg.Provider
	}
	provider := transcribe.Provider(strings.ToLower(strings.TrimSpace(providerStr)))
	if provider != transcribe.ProviderGemini && provider != transcribe.ProviderOpenAI {
		return fmt.Errorf("unsupported provider %q: use gemini or openai", providerStr)
	}

	if apiKey == "" {
		apiKey = cfg.APIKey(string(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			config.APIKeyEnv(string(provider)),
		)
	}

	if model == "" {
		model = cfg.Model
	}
	if rawPath == "" {
		rawPath = cfg.RawOutput
	}
	if noRaw {
		rawPath = ""
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	var audioPath string
	if len(args) == 1 {
		audioPath = args[0]
		if err := audio.CheckFile(audioPath); err != nil {
			return err
		}
		if outputPath == "" {
			outputPath = cfg.Output
		}
	} else {
		audioPath, err = promptAudioPath(in, out)
		if err != nil {
			return err
		}
		if outputPath == "" {
			outputPath, err = promptOutputPath(in, out, cfg.Output)
			if err != nil {
				return err
			}
		}
	}

	if !audio.IsAudioFile(audioPath) {
		logger.Warnw("Input does not look like an audio file, uploading anyway",
			"input", audioPath,
			"mime_type", audio.MIMEType(audioPath),
		)
	}

	logger.Infow("Starting subtitle generation",
		"input", audioPath,
		"output", outputPath,
		"provider", provider,
		"model", model,
		"raw_output", rawPath,
		"strict", strict,
	)

	transcriber, err := newTranscriber(ctx, provider, apiKey, transcribe.Options{
		Language: language,
		Model:    model,
		Prompt:   prompt,
	})
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	stop := startSpinner(cmd.ErrOrStderr(), "Processing")
	started := time.Now()
	raw, err := transcriber.Transcribe(ctx, audioPath)
	stop()
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"elapsed", time.Since(started).Round(time.Millisecond).String(),
		"response_bytes", len(raw),
	)

	count, err := writeSubtitles(raw, subtitleJob{
		OutputPath: outputPath,
		RawPath:    rawPath,
		Strict:     strict,
	})
	if err != nil {
		return err
	}

	printSummary(cmd, outputPath, count)
	return nil
}

// saves the raw response, parses it and writes the SRT file; returns the
// number of subtitle entries written
func writeSubtitles(raw string, job subtitleJob) (int, error) {
	if job.RawPath != "" {
		if err := os.WriteFile(job.RawPath, []byte(raw), 0644); err != nil {
			return 0, fmt.Errorf("failed to save raw response: %w", err)
		}
		logger.Debugw("Saved raw response", "path", job.RawPath)
	}

	entries, err := subtitle.ParseTranscript(raw)
	if err != nil {
		return 0, err
	}

	logger.Infow("Parsed transcript",
		"words", len(entries),
	)

	if job.Strict {
		if err := subtitle.ValidateTimings(entries); err != nil {
			return 0, fmt.Errorf("invalid word timing: %w", err)
		}
	}

	if err := subtitle.NewSRTWriter().Write(entries, job.OutputPath); err != nil {
		return 0, fmt.Errorf("failed to write subtitles: %w", err)
	}

	return len(entries), nil
}

func printSummary(cmd *cobra.Command, outputPath string, count int) {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		absOutput = outputPath
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitle created: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d\n", count)
}
