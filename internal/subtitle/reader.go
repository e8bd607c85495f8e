package subtitle

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// lineReader wraps a forward-only stream with a single line of
// pushback. Lines are counted 1-based and a line is only counted once
// read consumes it, so a failure while fetching the next line is
// attributed to lineno+1: that line was never successfully counted.
type lineReader struct {
	br     *bufio.Reader
	lineno int
	next   *string
	eof    bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// peek returns the next line without consuming it.
func (lr *lineReader) peek() (string, bool, error) {
	if lr.next != nil {
		return *lr.next, true, nil
	}
	line, ok, err := lr.fetch()
	if err != nil || !ok {
		return "", false, err
	}
	lr.next = &line
	return line, true, nil
}

// read consumes the next line and advances the counter.
func (lr *lineReader) read() (string, bool, error) {
	if lr.next != nil {
		line := *lr.next
		lr.next = nil
		lr.lineno++
		return line, true, nil
	}
	line, ok, err := lr.fetch()
	if err != nil || !ok {
		return "", false, err
	}
	lr.lineno++
	return line, true, nil
}

// fetch pulls one raw line from the underlying reader and strips the
// trailing CR/LF. The returned line has not been counted yet.
func (lr *lineReader) fetch() (string, bool, error) {
	if lr.eof {
		return "", false, nil
	}
	raw, err := lr.br.ReadString('\n')
	if err == io.EOF {
		lr.eof = true
		if raw == "" {
			return "", false, nil
		}
	} else if err != nil {
		return "", false, fatalf(
			lr.lineno+1,
			"Error reading subtitles near line %d: %s", lr.lineno+1, err,
		)
	}
	line := strings.TrimRight(raw, "\r\n")
	if !utf8.ValidString(line) {
		return "", false, fatalf(
			lr.lineno+1,
			"Invalid unicode in subtitles near line %d", lr.lineno+1,
		)
	}
	return line, true, nil
}
