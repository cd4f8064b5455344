package cli

import (
	"github.com/mgpai22/wordsrt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "wordsrt",
	Short: "AI-powered word-level subtitle generator for audio",
	Long: `Wordsrt is a CLI tool that sends an audio file to an AI transcription
service and turns the returned per-word timings into an SRT subtitle file,
one subtitle block per spoken word.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output SRT file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Spoken language of the audio (e.g., en, id, english)")
}
