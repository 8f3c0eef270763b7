package factlex

import "github.com/factlang/factlex/lexer"

// Registry is implemented by hosts that look up tokenizers by language identifier.
type Registry interface {
	Register(id string, def *lexer.Definition) error
}

// Register the fact tokenizer with r under LanguageID.
func Register(r Registry) error {
	return r.Register(LanguageID, definition)
}
