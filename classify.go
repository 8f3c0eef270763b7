package factlex

import "github.com/factlang/factlex/lexer"

// Class of an identifier-like word.
type Class int

// Word classes.
const (
	ClassIdentifier Class = iota
	ClassKeyword
	ClassTypeKeyword
	ClassTypeIdentifier
)

func (c Class) String() string {
	switch c {
	case ClassKeyword:
		return "keyword"
	case ClassTypeKeyword:
		return "type-keyword"
	case ClassTypeIdentifier:
		return "type-identifier"
	default:
		return "identifier"
	}
}

// Kind is the token kind words of this class are emitted with.
//
// Type keywords are highlighted as keywords.
func (c Class) Kind() lexer.Kind {
	switch c {
	case ClassKeyword, ClassTypeKeyword:
		return Keyword
	case ClassTypeIdentifier:
		return TypeIdentifier
	default:
		return Identifier
	}
}

// Classify a word by exact set membership.
//
// Words starting with an upper case letter are always type identifiers, even when their lower
// case spelling is a keyword.
func Classify(word string) Class {
	if word != "" && word[0] >= 'A' && word[0] <= 'Z' {
		return ClassTypeIdentifier
	}
	switch {
	case definition.InSet(setTypeKeywords, word):
		return ClassTypeKeyword
	case definition.InSet(setKeywords, word):
		return ClassKeyword
	}
	return ClassIdentifier
}
