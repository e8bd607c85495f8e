package subtitle

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	// a timestamp line splits on the last " --> " occurrence
	timestampsRegex = regexp.MustCompile(`^(.*) --> (.*)$`)

	// numbered cue line carrying a quoted speaker name, e.g.
	// `12 "Alice" (radio)`; trailing content after the name is ignored
	nameRegex = regexp.MustCompile(`^([0-9]+) "([^"]*)"`)
)

// Parse reads one subtitle stream to completion and returns the cues
// in input order together with any numbering warnings. A malformed
// stream aborts with a *ParseError and no usable cue list.
func Parse(r io.Reader, dialect Dialect) ([]Cue, []Diagnostic, error) {
	p := &parser{src: newLineReader(r), dialect: dialect}
	if err := p.parse(); err != nil {
		return nil, nil, err
	}
	return p.cues, p.diags, nil
}

type parser struct {
	src     *lineReader
	dialect Dialect
	cues    []Cue
	diags   []Diagnostic

	// numbering tracker: prevNumber is nil when the previous cue was
	// unnumbered, started reports whether any cue has been accepted
	prevNumber *int
	started    bool
}

func (p *parser) parse() error {
	if p.dialect == Flexible {
		line, ok, err := p.src.read()
		if err != nil {
			return err
		}
		if !ok {
			return &ParseError{Message: "File is empty"}
		}
		if !strings.HasPrefix(line, "WEBVTT") {
			return &ParseError{Line: 1, Message: "First line doesn't start with 'WEBVTT'"}
		}
	}
	if err := p.skipBlankLines(); err != nil {
		return err
	}
	for {
		more, err := p.parseCue()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// parseCue consumes one cue block, or one NOTE/STYLE region in the
// Flexible dialect. Reports false once no input remains.
func (p *parser) parseCue() (bool, error) {
	line, ok, err := p.src.peek()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if p.dialect == Flexible && (strings.HasPrefix(line, "NOTE ") || line == "STYLE") {
		if err := p.skipUntilBlankLine(); err != nil {
			return false, err
		}
		return true, nil
	}

	var number *int
	var name string
	if !strings.Contains(line, "-->") {
		if _, _, err := p.src.read(); err != nil {
			return false, err
		}
		token := line
		if m := nameRegex.FindStringSubmatch(token); m != nil {
			token, name = m[1], m[2]
		}
		n, convErr := strconv.Atoi(token)
		if convErr != nil || n < 0 {
			return false, fatalf(
				p.src.lineno,
				"Invalid subtitle number line %d", p.src.lineno,
			)
		}
		number = &n
		p.checkNumbering(n)
	} else if p.dialect == Strict {
		// the offending line is still unconsumed, blame it rather
		// than the last counted one
		return false, fatalf(
			p.src.lineno+1,
			"Missing subtitle number line %d", p.src.lineno+1,
		)
	} else if p.started && p.prevNumber != nil {
		p.warnf(p.src.lineno+1, "Subtitle numbers stop line %d", p.src.lineno+1)
	}

	start, end, err := p.parseTimestamps()
	if err != nil {
		return false, err
	}

	firstLineno := p.src.lineno
	var lines []string
	for {
		text, ok, err := p.src.read()
		if err != nil {
			return false, err
		}
		if !ok || text == "" {
			break
		}
		lines = append(lines, text)
	}
	if len(lines) == 0 {
		return false, fatalf(firstLineno, "No content in subtitle line %d", firstLineno)
	}

	p.cues = append(p.cues, Cue{
		Number:  number,
		Name:    name,
		StartMS: start,
		EndMS:   end,
		Text:    strings.Join(lines, "\n"),
	})
	p.prevNumber = number
	p.started = true

	if err := p.skipBlankLines(); err != nil {
		return false, err
	}
	return true, nil
}

// checkNumbering compares a freshly parsed cue number against its
// predecessor and records a warning for any irregularity. Called with
// the number line just consumed, so the counter points at it.
func (p *parser) checkNumbering(n int) {
	if p.started && p.prevNumber == nil {
		p.warnf(
			p.src.lineno+1,
			"Subtitle numbers (re)starts line %d", p.src.lineno+1,
		)
		return
	}
	prev := 0
	if p.prevNumber != nil {
		prev = *p.prevNumber
	}
	if n != prev+1 {
		p.warnf(p.src.lineno, "Subtitle number is %d, expected %d", n, prev+1)
	}
}

func (p *parser) parseTimestamps() (int, int, error) {
	line, ok, err := p.src.read()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, fatalf(p.src.lineno, "Missing timestamps line %d", p.src.lineno)
	}
	m := timestampsRegex.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, fatalf(p.src.lineno, "Invalid timestamps line %d", p.src.lineno)
	}
	start, err := parseTimestamp(m[1], p.src.lineno)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(m[2], p.src.lineno)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (p *parser) skipBlankLines() error {
	for {
		line, ok, err := p.src.peek()
		if err != nil {
			return err
		}
		if !ok || line != "" {
			return nil
		}
		if _, _, err := p.src.read(); err != nil {
			return err
		}
	}
}

// skipUntilBlankLine consumes a NOTE or STYLE region through its
// terminating blank line, then any blank lines after it.
func (p *parser) skipUntilBlankLine() error {
	for {
		line, ok, err := p.src.peek()
		if err != nil {
			return err
		}
		if !ok || line == "" {
			break
		}
		if _, _, err := p.src.read(); err != nil {
			return err
		}
	}
	return p.skipBlankLines()
}

func (p *parser) warnf(line int, format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}
