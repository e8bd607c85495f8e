package cli

import (
	"subconv/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subconv",
	Short: "Convert SubRip and WebVTT subtitles to HTML, CSV or SRT",
	Long: `Subconv parses SubRip (.srt) and WebVTT (.vtt) subtitle files into
structured cues and renders them as HTML, CSV or renumbered SRT.

Malformed input is rejected with the offending line number; cue
numbering irregularities are reported as warnings on stderr.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
