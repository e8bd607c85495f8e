package subtitle

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// grammar variant for a subtitle stream
type Dialect int

const (
	// SubRip grammar: every cue carries a number
	Strict Dialect = iota
	// WebVTT grammar: numbers optional, NOTE/STYLE blocks skipped,
	// header line required
	Flexible
)

// represents a single subtitle cue
type Cue struct {
	Number  *int // nil when the cue had no number line
	Name    string
	StartMS int
	EndMS   int
	Text    string
}

// non-fatal warning attributed to a 1-based input line
type Diagnostic struct {
	Line    int
	Message string
}

// fatal parse failure; the message embeds the 1-based line where the
// defect was detected when one applies
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func fatalf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// dialect based on file extension: .vtt is WebVTT, everything else SubRip
func DialectForPath(path string) Dialect {
	if strings.EqualFold(filepath.Ext(path), ".vtt") {
		return Flexible
	}
	return Strict
}

// writes warnings one per line as "name:line: message"
func WriteDiagnostics(w io.Writer, name string, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "%s:%d: %s\n", name, d.Line, d.Message); err != nil {
			return err
		}
	}
	return nil
}
