// Package factlex is the lexical definition of the fact language, a systems language for
// secure computation, for use by syntax highlighters.
//
// The tokenizer is a lexer.Definition interpreted by the table-driven line lexer in the lexer
// package. It is organised into four states:
//
//     - `root` Identifiers, keywords, brackets, operators, annotations, numbers and strings.
//     - `whitespace` Included by root. Blanks and comments.
//     - `comment` Block comments. `/*` pushes a further comment state, so comments nest.
//     - `string` The body of a double quoted string, including escapes.
//
// Lexing is line oriented. The *lexer.State returned at the end of a line carries any open
// comments or strings into the next:
//
//     state := factlex.InitialState()
//     for _, line := range lines {
//         var tokens []lexer.Token
//         tokens, state = factlex.ScanLine(state, line)
//         ...
//     }
//
// Malformed input never fails; it is classified with one of the ".invalid" kinds instead.
package factlex
