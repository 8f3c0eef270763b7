package factlex

import (
	"strings"

	"github.com/factlang/factlex/lexer"
)

// SymbolChars are the characters that form symbol runs.
const SymbolChars = "=><!~?:&|+-*/^%"

// IsSymbolRun reports whether s is a non-empty run of SymbolChars.
func IsSymbolRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(SymbolChars, r) {
			return false
		}
	}
	return true
}

// IsOperator reports whether s is exactly one of the fact operators.
func IsOperator(s string) bool {
	return definition.InSet(setOperators, s)
}

// Disambiguate classifies a complete symbol run.
//
// The run is matched as a whole: "<<<=" is one operator, and a run that is not an operator is
// left unclassified rather than split into shorter operators.
func Disambiguate(run string) lexer.Kind {
	if IsSymbolRun(run) && IsOperator(run) {
		return Operator
	}
	return lexer.Unclassified
}
