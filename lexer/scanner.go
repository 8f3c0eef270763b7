package lexer

import (
	"unicode/utf8"
)

// LineLexer lazily produces the tokens of a single line.
//
// It is created by Definition.Lex and is restartable: the State it reports once exhausted can
// be passed to Lex for the following line.
type LineLexer struct {
	def     *Definition
	state   *State
	line    string
	pos     int
	pending []Token
}

// Lex returns a LineLexer over line, starting in state.
//
// line should not include its terminator.
func (d *Definition) Lex(state *State, line string) *LineLexer {
	if state == nil {
		state = d.InitialState()
	}
	return &LineLexer{def: d, state: state, line: line}
}

// Next consumes and returns the next token. It returns false once the line is exhausted.
func (l *LineLexer) Next() (Token, bool) {
	for len(l.pending) == 0 {
		if l.pos >= len(l.line) {
			return Token{}, false
		}
		l.step()
	}
	token := l.pending[0]
	l.pending = l.pending[1:]
	return token, true
}

// State is the state stack after the tokens returned so far.
func (l *LineLexer) State() *State { return l.state }

// Offset of the first byte not yet consumed.
func (l *LineLexer) Offset() int { return l.pos }

// step applies the first matching rule of the active state at the current offset.
func (l *LineLexer) step() {
	rest := l.line[l.pos:]
	rules := l.def.rules[l.state.Name()]
	for i := range rules {
		rule := &rules[i]
		match := rule.re.FindStringSubmatchIndex(rest)
		// Rules must consume input to guarantee progress.
		if match == nil || match[1] == 0 {
			continue
		}
		if rule.unless != nil && rule.unless.MatchString(rest[match[1]:]) {
			continue
		}
		l.pending = append(l.pending, rule.Token.emit(l.def, rest, match, l.pos)...)
		if rule.Action != nil {
			l.state = rule.Action.apply(l.state)
		}
		l.pos += match[1]
		return
	}
	_, size := utf8.DecodeRuneInString(rest)
	l.pending = append(l.pending, Token{
		Kind:  l.def.defaultKind,
		Value: rest[:size],
		Start: l.pos,
		End:   l.pos + size,
	})
	l.pos += size
}

// ScanLine lexes a whole line starting in state, returning its tokens and the state to resume
// the next line with.
func (d *Definition) ScanLine(state *State, line string) ([]Token, *State) {
	lex := d.Lex(state, line)
	var tokens []Token
	for {
		token, ok := lex.Next()
		if !ok {
			return tokens, lex.State()
		}
		tokens = append(tokens, token)
	}
}

// Tokenize lexes a complete document from the initial state.
//
// Token offsets are relative to the start of text and line terminators are emitted as tokens
// of the Language's LineEnd kind, so the token values concatenate back to text.
func (d *Definition) Tokenize(text string) ([]Token, *State) {
	state := d.InitialState()
	var out []Token
	offset := 0
	for _, line := range splitLines(text) {
		tokens, next := d.ScanLine(state, line.text)
		for _, token := range tokens {
			out = append(out, token.Shift(offset))
		}
		offset += len(line.text)
		if line.eol != "" {
			out = append(out, Token{Kind: d.lineEnd, Value: line.eol, Start: offset, End: offset + len(line.eol)})
			offset += len(line.eol)
		}
		state = next
	}
	return out, state
}
