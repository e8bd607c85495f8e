package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subconv/internal/config"
	"subconv/internal/subtitle"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file]",
	Short: "Parse a subtitle file and report numbering warnings",
	Long: `Parse a SubRip or WebVTT subtitle file without converting it.

Numbering warnings are printed to stderr; a malformed file fails with
the offending line number.

Examples:
  subconv check talk.srt
  subconv check talk.vtt --input-charset iso-8859-1`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		String("input-charset", "", "Input character set (default: detect)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cues, diags, err := parseFile(cmd, inputPath, cfg)
	if err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}
	if err := subtitle.WriteDiagnostics(os.Stderr, inputPath, diags); err != nil {
		return err
	}

	fmt.Printf("%s: %d cues, %d warnings\n", inputPath, len(cues), len(diags))
	return nil
}
