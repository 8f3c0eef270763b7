package factlex

import "github.com/factlang/factlex/lexer"

// InitialState returns the state for the first line of a document.
func InitialState() *lexer.State { return definition.InitialState() }

// ScanLine lexes one line (without its terminator) starting in state.
//
// It returns the line's tokens, with offsets relative to the line, and the state to resume the
// next line with.
func ScanLine(state *lexer.State, line string) ([]lexer.Token, *lexer.State) {
	return definition.ScanLine(state, line)
}

// Tokenize lexes a whole document.
func Tokenize(text string) []lexer.Token {
	tokens, _ := definition.Tokenize(text)
	return tokens
}

// NewDocument creates an incrementally relexed document over text.
func NewDocument(text string) *lexer.Document {
	return lexer.NewDocument(definition, text)
}

// CommentDepth is the number of block comments open in state.
func CommentDepth(state *lexer.State) int {
	return state.Count(StateComment)
}
