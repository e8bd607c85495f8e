package charset

import (
	"fmt"
	"io"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Detect guesses the character set of a sample of the input,
// returning "" when no confident guess exists.
func Detect(sample []byte) string {
	if len(sample) == 0 {
		return ""
	}
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return ""
	}
	return result.Charset
}

// NewReader decodes r from the named character set into UTF-8. An
// empty name selects UTF-8.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
