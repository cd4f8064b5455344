package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/wordsrt/internal/config"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [response_file]",
	Short: "Render a saved transcription response as SRT",
	Long: `Render a previously saved raw transcription response (for example the
data.txt written by "wordsrt generate") into an SRT file without calling any
transcription service.

Examples:
  wordsrt render data.txt
  wordsrt render data.txt -o subtitle.srt --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().
		Bool("strict", false, "Reject words whose times are out of order or beyond 59:59")
}

func runRender(cmd *cobra.Command, args []string) error {
	responsePath := args[0]

	strict, _ := cmd.Flags().GetBool("strict")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		outputPath = cfg.Output
	}

	raw, err := os.ReadFile(responsePath)
	if err != nil {
		return fmt.Errorf("failed to read response file: %w", err)
	}

	logger.Infow("Rendering saved response",
		"input", responsePath,
		"output", outputPath,
		"strict", strict,
	)

	count, err := writeSubtitles(string(raw), subtitleJob{
		OutputPath: outputPath,
		Strict:     strict,
	})
	if err != nil {
		return err
	}

	printSummary(cmd, outputPath, count)
	return nil
}
