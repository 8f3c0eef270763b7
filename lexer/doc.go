// Package lexer implements a table-driven, line-oriented lexer for syntax highlighting.
//
// The lexer is a state machine defined by a map of rules keyed by state. Each rule is a regex,
// an Outcome producing tokens, and an optional Action that pushes or pops the state stack.
//
// Lexing starts in the Language's Start state (by default "root"). Rules are tried in order
// and the first successful match wins, so order within a state encodes priority. When no
// rule matches, a single character is consumed and emitted with the default kind; lexing can
// therefore never stall or leave part of the input unclassified.
//
// Input is lexed a line at a time. The state stack left at the end of each line is an
// immutable *State that can be stored and handed back to resume on the next line, which is
// what makes incremental relexing of edited documents possible (see Document).
//
// To reuse rules from another state, use `Include(state)`.
package lexer
