package lexer

import (
	"context"
	"fmt"
	"strings"
)

type line struct {
	text string
	eol  string
	// Set once the line has been lexed.
	valid  bool
	start  *State
	end    *State
	tokens []Token
}

// splitLines breaks text into lines, keeping each line's terminator ("\n" or "\r\n") separate.
//
// The result always has at least one line; text ending in a terminator yields a trailing
// empty line.
func splitLines(text string) []*line {
	var out []*line
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return append(out, &line{text: text})
		}
		l := &line{text: text[:i], eol: "\n"}
		if i > 0 && text[i-1] == '\r' {
			l.text, l.eol = text[:i-1], "\r\n"
		}
		out = append(out, l)
		text = text[i+1:]
	}
}

// Document holds per-line lexing results for one text buffer and relexes only what an edit
// invalidates.
//
// Each line's end state is persisted. After an edit, Relex rescans from the first changed line
// and continues only while the state handed to the following line differs from the one it was
// last lexed with. A Document is not safe for concurrent use; separate Documents share no
// mutable state.
type Document struct {
	def   *Definition
	lines []*line
	// Index of the first line that may need lexing.
	dirty int
}

// NewDocument creates a Document over text. Call Relex before reading tokens.
func NewDocument(def *Definition, text string) *Document {
	return &Document{def: def, lines: splitLines(text)}
}

// Lines is the number of lines in the document.
func (d *Document) Lines() int { return len(d.lines) }

// Text reassembles the document.
func (d *Document) Text() string {
	w := &strings.Builder{}
	for _, l := range d.lines {
		w.WriteString(l.text)
		w.WriteString(l.eol)
	}
	return w.String()
}

// LineText returns line i without its terminator.
func (d *Document) LineText(i int) string { return d.lines[i].text }

// Line returns the tokens of line i, with offsets relative to the line.
//
// Lines that have not been lexed since they were edited have no tokens.
func (d *Document) Line(i int) []Token {
	l := d.lines[i]
	if !l.valid {
		return nil
	}
	return l.tokens
}

// EndState returns the state stack at the end of line i, or nil if it has not been lexed.
func (d *Document) EndState(i int) *State {
	l := d.lines[i]
	if !l.valid {
		return nil
	}
	return l.end
}

// Clean reports whether every line is up to date.
func (d *Document) Clean() bool { return d.dirty >= len(d.lines) }

// Tokens returns the tokens of the whole document with document-relative offsets, including
// line terminators, or an error if the document has not been relexed since the last edit.
func (d *Document) Tokens() ([]Token, error) {
	if !d.Clean() {
		return nil, fmt.Errorf("document has unlexed lines from line %d", d.dirty)
	}
	var out []Token
	offset := 0
	for _, l := range d.lines {
		for _, token := range l.tokens {
			out = append(out, token.Shift(offset))
		}
		offset += len(l.text)
		if l.eol != "" {
			out = append(out, Token{Kind: d.def.lineEnd, Value: l.eol, Start: offset, End: offset + len(l.eol)})
			offset += len(l.eol)
		}
	}
	return out, nil
}

// Replace lines [start, end) with lines (given without terminators).
//
// A line containing a line break is rejected and the document is left untouched.
func (d *Document) Replace(start, end int, lines ...string) error {
	repl := make([]*line, len(lines))
	for i, text := range lines {
		if strings.ContainsAny(text, "\r\n") {
			return fmt.Errorf("replacement line %d contains a line break: %q", i, text)
		}
		repl[i] = &line{text: text, eol: "\n"}
	}
	return d.replace(start, end, repl)
}

// SetText replaces the whole text, invalidating only the lines that differ.
//
// It returns the range of new lines that were replaced.
func (d *Document) SetText(text string) (start, end int) {
	next := splitLines(text)
	prefix := 0
	for prefix < len(d.lines) && prefix < len(next) && sameLine(d.lines[prefix], next[prefix]) {
		prefix++
	}
	suffix := 0
	for suffix < len(d.lines)-prefix && suffix < len(next)-prefix &&
		sameLine(d.lines[len(d.lines)-1-suffix], next[len(next)-1-suffix]) {
		suffix++
	}
	_ = d.replace(prefix, len(d.lines)-suffix, next[prefix:len(next)-suffix])
	return prefix, len(next) - suffix
}

func sameLine(a, b *line) bool {
	return a.text == b.text && a.eol == b.eol
}

func (d *Document) replace(start, end int, repl []*line) error {
	if start < 0 || end < start || end > len(d.lines) {
		return fmt.Errorf("invalid line range [%d, %d) for document of %d lines", start, end, len(d.lines))
	}
	lines := make([]*line, 0, len(d.lines)-(end-start)+len(repl))
	lines = append(lines, d.lines[:start]...)
	lines = append(lines, repl...)
	lines = append(lines, d.lines[end:]...)
	if len(lines) == 0 {
		lines = append(lines, &line{})
	}
	// Only the final line is unterminated.
	for _, l := range lines[:len(lines)-1] {
		if l.eol == "" {
			l.eol = "\n"
		}
	}
	lines[len(lines)-1].eol = ""
	d.lines = lines
	if start < d.dirty {
		d.dirty = start
	}
	return nil
}

// Relex brings every line up to date and returns how many lines were lexed.
//
// Lexing stops early once a line's starting state matches the one it was last lexed with.
// Cancelling ctx stops between lines; the unfinished lines stay dirty and keep no partial
// results, so a later Relex resumes where this one stopped.
func (d *Document) Relex(ctx context.Context) (int, error) {
	lexed := 0
	for i := d.dirty; i < len(d.lines); i++ {
		l := d.lines[i]
		start := d.def.InitialState()
		if i > 0 {
			start = d.lines[i-1].end
		}
		if l.valid && l.start.Equal(start) {
			continue
		}
		if err := ctx.Err(); err != nil {
			d.dirty = i
			return lexed, err
		}
		tokens, end := d.def.ScanLine(start, l.text)
		l.start, l.end, l.tokens, l.valid = start, end, tokens, true
		lexed++
	}
	d.dirty = len(d.lines)
	return lexed, nil
}
