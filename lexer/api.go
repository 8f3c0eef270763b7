package lexer

import "fmt"

// Kind is the classification label attached to a Token, eg. "keyword" or "string.escape".
//
// Kinds are dotted so that consumers such as themes can fall back from "string.escape.invalid"
// to "string.escape" and then "string".
type Kind string

// Unclassified is the empty kind. It is emitted by rules that deliberately leave text unstyled.
const Unclassified Kind = ""

// Bracket marks tokens produced by the bracket outcome.
type Bracket int

// Bracket markers.
const (
	BracketNone Bracket = iota
	BracketOpen
	BracketClose
)

func (b Bracket) String() string {
	switch b {
	case BracketOpen:
		return "open"
	case BracketClose:
		return "close"
	default:
		return "none"
	}
}

// A Token returned by a LineLexer.
//
// Start and End are byte offsets into the scanned line (or document, for Tokenize), with End
// exclusive.
type Token struct {
	Kind    Kind    `json:"kind"`
	Value   string  `json:"value"`
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Bracket Bracket `json:"bracket,omitempty"`
}

func (t Token) String() string {
	return t.Value
}

func (t Token) GoString() string {
	if t.Bracket != BracketNone {
		return fmt.Sprintf("Token@%d:%d{%q, %q, %s}", t.Start, t.End, t.Kind, t.Value, t.Bracket)
	}
	return fmt.Sprintf("Token@%d:%d{%q, %q}", t.Start, t.End, t.Kind, t.Value)
}

// Shift returns a copy of the token with its offsets moved by delta bytes.
func (t Token) Shift(delta int) Token {
	t.Start += delta
	t.End += delta
	return t
}
