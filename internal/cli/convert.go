package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subconv/internal/charset"
	"subconv/internal/config"
	"subconv/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to another format",
	Long: `Convert a SubRip or WebVTT subtitle file to HTML, CSV or SRT.

The input dialect is chosen by extension: .vtt files are parsed as
WebVTT, everything else as SubRip. When --output is omitted the result
is written next to the input with the new extension.

Examples:
  subconv convert talk.srt --to html
  subconv convert talk.vtt --to csv -o talk.csv
  subconv convert talk.vtt --to srt --names`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "", "Output format (html, csv, srt)")
	convertCmd.Flags().StringP("output", "o", "", "Output file path")
	convertCmd.Flags().
		String("input-charset", "", "Input character set (default: detect)")
	convertCmd.Flags().Bool("names", false, "Always include speaker names")
	convertCmd.Flags().Bool("no-names", false, "Never include speaker names")
}

var outputExtensions = map[string]string{
	"html": ".html",
	"csv":  ".csv",
	"srt":  ".srt",
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("to")
	if format == "" {
		format = cfg.Format
	}
	format = strings.ToLower(format)
	if format == "" {
		return fmt.Errorf("no output format specified (use --to)")
	}
	ext, ok := outputExtensions[format]
	if !ok {
		return fmt.Errorf(
			"unsupported output format %q: use html, csv or srt",
			format,
		)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf(
				"default output %s already exists, remove it or use --output",
				filepath.Base(outputPath),
			)
		}
	}

	cues, diags, err := parseFile(cmd, inputPath, cfg)
	if err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}
	if err := subtitle.WriteDiagnostics(os.Stderr, inputPath, diags); err != nil {
		return err
	}

	opts := subtitle.Options{Names: nameMode(cmd, cfg)}
	var buf bytes.Buffer
	switch format {
	case "html":
		err = subtitle.RenderHTML(&buf, cues, opts)
	case "csv":
		err = subtitle.RenderCSV(&buf, cues, opts)
	case "srt":
		err = subtitle.RenderSRT(&buf, cues, opts)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return err
	}

	logger.Infow("Converted subtitles",
		"input", inputPath,
		"output", outputPath,
		"cues", len(cues),
		"warnings", len(diags),
	)
	return nil
}

// parseFile opens the input, settles its character set and parses it
// with the dialect implied by the file extension.
func parseFile(
	cmd *cobra.Command,
	path string,
	cfg *config.Config,
) ([]subtitle.Cue, []subtitle.Diagnostic, error) {
	name, _ := cmd.Flags().GetString("input-charset")
	if name == "" {
		name = cfg.InputCharset
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if name == "" {
		head := make([]byte, 4096)
		n, _ := io.ReadFull(f, head)
		if detected := charset.Detect(head[:n]); detected != "" {
			name = detected
			logger.Infow("Detected input charset",
				"file", path,
				"charset", name,
			)
		} else {
			name = "utf-8"
			logger.Warnw("Couldn't detect charset, assuming utf-8",
				"file", path,
			)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, nil, err
		}
	}

	decoded, err := charset.NewReader(f, name)
	if err != nil {
		return nil, nil, err
	}
	return subtitle.Parse(decoded, subtitle.DialectForPath(path))
}

func nameMode(cmd *cobra.Command, cfg *config.Config) subtitle.NameMode {
	if on, _ := cmd.Flags().GetBool("names"); on {
		return subtitle.NamesOn
	}
	if off, _ := cmd.Flags().GetBool("no-names"); off {
		return subtitle.NamesOff
	}
	switch cfg.Names {
	case "always":
		return subtitle.NamesOn
	case "never":
		return subtitle.NamesOff
	}
	return subtitle.NamesAuto
}
