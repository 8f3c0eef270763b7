package factlex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/factlang/factlex"
	"github.com/factlang/factlex/lexer"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		word  string
		class factlex.Class
		kind  lexer.Kind
	}{
		{"public", factlex.ClassKeyword, factlex.Keyword},
		{"cacheline", factlex.ClassKeyword, factlex.Keyword},
		{"Public", factlex.ClassTypeIdentifier, factlex.TypeIdentifier},
		{"int32", factlex.ClassTypeKeyword, factlex.Keyword},
		{"bool", factlex.ClassTypeKeyword, factlex.Keyword},
		{"intx", factlex.ClassIdentifier, factlex.Identifier},
		{"Int32", factlex.ClassTypeIdentifier, factlex.TypeIdentifier},
		{"", factlex.ClassIdentifier, factlex.Identifier},
	}
	for _, test := range tests {
		class := factlex.Classify(test.word)
		require.Equal(t, test.class, class, test.word)
		require.Equal(t, test.kind, class.Kind(), test.word)
	}
}

func TestClassifyAgreesWithTokenizer(t *testing.T) {
	words := append(factlex.Keywords(), factlex.TypeKeywords()...)
	words = append(words, "x", "Foo", "int", "publics", "$v", "_")
	for _, word := range words {
		tokens, _ := factlex.ScanLine(nil, word)
		require.Len(t, tokens, 1, word)
		require.Equal(t, factlex.Classify(word).Kind(), tokens[0].Kind, word)
	}
}

func TestClassString(t *testing.T) {
	require.Equal(t, "type-keyword", factlex.ClassTypeKeyword.String())
	require.Equal(t, "type-identifier", factlex.ClassTypeIdentifier.String())
	require.Equal(t, "keyword", factlex.ClassKeyword.String())
	require.Equal(t, "identifier", factlex.ClassIdentifier.String())
}
