package subtitle

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"
)

// NameMode controls whether speaker names appear in rendered output.
type NameMode int

const (
	// show names when at least one cue carries one
	NamesAuto NameMode = iota
	NamesOn
	NamesOff
)

// Options configures the renderers.
type Options struct {
	Names NameMode
}

func showNames(cues []Cue, mode NameMode) bool {
	switch mode {
	case NamesOn:
		return true
	case NamesOff:
		return false
	}
	for _, c := range cues {
		if c.Name != "" {
			return true
		}
	}
	return false
}

// RenderHTML writes one <p> element per cue with the start timestamp,
// escaped text and line breaks as <br>.
func RenderHTML(w io.Writer, cues []Cue, opts Options) error {
	names := showNames(cues, opts.Names)
	for _, c := range cues {
		text := strings.ReplaceAll(html.EscapeString(c.Text), "\n", "<br>")
		if names && c.Name != "" {
			text = html.EscapeString(c.Name) + ": " + text
		}
		_, err := fmt.Fprintf(w, "<p>%s %s</p>\n", FormatTimestamp(c.StartMS, '.'), text)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderCSV writes a header row followed by one record per cue. The
// name column only appears when names are shown.
func RenderCSV(w io.Writer, cues []Cue, opts Options) error {
	names := showNames(cues, opts.Names)
	cw := csv.NewWriter(w)
	header := []string{"start", "end", "text"}
	if names {
		header = []string{"start", "end", "name", "text"}
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range cues {
		record := []string{
			FormatTimestamp(c.StartMS, '.'),
			FormatTimestamp(c.EndMS, '.'),
		}
		if names {
			record = append(record, c.Name)
		}
		record = append(record, c.Text)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderSRT writes SubRip text, renumbering cues sequentially from 1
// regardless of their original numbers. Names, when shown, become a
// bracketed line before the cue text.
func RenderSRT(w io.Writer, cues []Cue, opts Options) error {
	names := showNames(cues, opts.Names)
	var sb strings.Builder
	for i, c := range cues {
		sb.Reset()
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n",
			FormatTimestamp(c.StartMS, ','),
			FormatTimestamp(c.EndMS, ','))
		if names && c.Name != "" {
			fmt.Fprintf(&sb, "[%s]\n", c.Name)
		}
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
