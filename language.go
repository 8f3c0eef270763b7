package factlex

import (
	"github.com/factlang/factlex/lexer"
)

// LanguageID is the identifier the tokenizer is registered under.
const LanguageID = "fact"

// Token kinds emitted by the tokenizer.
const (
	Keyword             lexer.Kind = "keyword"
	TypeIdentifier      lexer.Kind = "type.identifier"
	Identifier          lexer.Kind = "identifier"
	Operator            lexer.Kind = "operator"
	Delimiter           lexer.Kind = "delimiter"
	Annotation          lexer.Kind = "annotation"
	AnnotationInvalid   lexer.Kind = "annotation.invalid"
	NumberFloat         lexer.Kind = "number.float"
	NumberHex           lexer.Kind = "number.hex"
	NumberOctal         lexer.Kind = "number.octal"
	NumberBinary        lexer.Kind = "number.binary"
	Number              lexer.Kind = "number"
	String              lexer.Kind = "string"
	StringInvalid       lexer.Kind = "string.invalid"
	StringEscape        lexer.Kind = "string.escape"
	StringEscapeInvalid lexer.Kind = "string.escape.invalid"
	Comment             lexer.Kind = "comment"
	CommentInvalid      lexer.Kind = "comment.invalid"
	White               lexer.Kind = "white"
	Invalid             lexer.Kind = "invalid"

	DelimiterCurly       lexer.Kind = "delimiter.curly"
	DelimiterParenthesis lexer.Kind = "delimiter.parenthesis"
	DelimiterSquare      lexer.Kind = "delimiter.square"
	DelimiterAngle       lexer.Kind = "delimiter.angle"
)

// States of the tokenizer.
const (
	StateRoot       = "root"
	StateWhitespace = "whitespace"
	StateComment    = "comment"
	StateString     = "string"
)

// Names of the word sets and macros in the definition.
const (
	setKeywords     = "keywords"
	setTypeKeywords = "typeKeywords"
	setOperators    = "operators"
)

var definition = lexer.Must(lexer.Language{
	DefaultToken: Invalid,
	LineEnd:      White,
	Start:        StateRoot,
	Sets: map[string][]string{
		setKeywords: {
			"void", "if", "else", "for", "from", "to", "in", "return", "public", "secret",
			"const", "mut", "ref", "len", "declassify", "assume", "zeros", "clone", "view",
			"extern", "inline", "export", "noinline", "struct", "cacheline",
		},
		setTypeKeywords: {
			"int8", "int16", "int32", "int64", "int128",
			"uint8", "uint16", "uint32", "uint64", "uint128",
			"bool",
		},
		setOperators: {
			"+", "-", "*", "/", "%", "+=", "-=", "*=", "/=", "%=", "==", "!=", ">", "<", ">=",
			"<=", "!", "&&", "||", "&&=", "||=", "&", "^", "|", "~", "&=", "^=", "|=", "<<",
			"<<<", ">>", ">>>", "<<=", "<<<=", ">>=", ">>>=", "?", ":", "(", ")", "{", "}",
			"[", "]", "=", ";", ",", ".", "=>",
		},
	},
	Macros: map[string]string{
		"symbols": `[=><!~?:&|+\-*/^%]+`,
		"escapes": `\\(?:[abfnrtv\\"']|x[0-9A-Fa-f]{1,4}|u[0-9A-Fa-f]{4}|U[0-9A-Fa-f]{8})`,
	},
	Brackets: []lexer.BracketPair{
		{Open: "{", Close: "}", Kind: DelimiterCurly},
		{Open: "[", Close: "]", Kind: DelimiterSquare},
		{Open: "(", Close: ")", Kind: DelimiterParenthesis},
		{Open: "<", Close: ">", Kind: DelimiterAngle},
	},
	States: lexer.States{
		StateRoot: {
			{Pattern: `[a-z_$][\w$]*`, Token: lexer.Cases{
				{Guard: "@" + setTypeKeywords, Kind: Keyword},
				{Guard: "@" + setKeywords, Kind: Keyword},
				{Guard: lexer.DefaultGuard, Kind: Identifier},
			}},
			{Pattern: `[A-Z][\w$]*`, Token: TypeIdentifier},

			lexer.Include(StateWhitespace),

			{Pattern: `[{}()[\]]`, Token: lexer.Brackets},
			{Pattern: `[<>]`, Unless: `@symbols`, Token: lexer.Brackets},
			{Pattern: `@symbols`, Token: lexer.Cases{
				{Guard: "@" + setOperators, Kind: Operator},
				{Guard: lexer.DefaultGuard, Kind: lexer.Unclassified},
			}},

			{Pattern: `#!\[.*\]`, Token: Annotation},
			{Pattern: `#!.*$`, Token: AnnotationInvalid},

			// Floats first so the integer rules never claim the digits before a '.'.
			{Pattern: `(?:\d*\.\d+(?:[eE][-+]?\d+)?|\d+[eE][-+]?\d+)[fFdD]?`, Token: NumberFloat},
			{Pattern: `0[xX][0-9a-fA-F_]*[0-9a-fA-F][Ll]?`, Token: NumberHex},
			{Pattern: `0[0-7_]*[0-7][Ll]?`, Token: NumberOctal},
			{Pattern: `0[bB][0-1_]*[0-1][Ll]?`, Token: NumberBinary},
			{Pattern: `\d+[lL]?`, Token: Number},

			// After numbers because of .5 floats.
			{Pattern: `[;,.]`, Token: Delimiter},

			{Pattern: `"(?:[^"\\]|\\.)*$`, Token: StringInvalid},
			{Pattern: `"`, Token: String, Action: lexer.Push(StateString)},

			{Pattern: `'[^\\']'`, Token: String},
			{Pattern: `(')(@escapes)(')`, Token: lexer.Groups{String, StringEscape, String}},
			{Pattern: `'`, Token: StringInvalid},
		},
		StateWhitespace: {
			{Pattern: `[ \t\r\n]+`, Token: White},
			{Pattern: `/\*`, Token: Comment, Action: lexer.Push(StateComment)},
			{Pattern: `//.*$`, Token: Comment},
		},
		StateComment: {
			{Pattern: `[^/*]+`, Token: Comment},
			{Pattern: `/\*`, Token: Comment, Action: lexer.PushCurrent()},
			// Shadowed by the rule above; kept so the exported table lists it.
			{Pattern: `/\*`, Token: CommentInvalid},
			{Pattern: `\*/`, Token: Comment, Action: lexer.Pop()},
			{Pattern: `[/*]`, Token: Comment},
		},
		StateString: {
			{Pattern: `[^\\"]+`, Token: String},
			{Pattern: `@escapes`, Token: StringEscape},
			{Pattern: `\\.`, Token: StringEscapeInvalid},
			{Pattern: `"`, Token: String, Action: lexer.Pop()},
		},
	},
})

// Definition returns the compiled tokenizer.
//
// The Definition is shared and immutable.
func Definition() *lexer.Definition { return definition }

// Keywords returns the keyword set.
func Keywords() []string { return definition.Set(setKeywords) }

// TypeKeywords returns the built-in type names, which are highlighted as keywords.
func TypeKeywords() []string { return definition.Set(setTypeKeywords) }

// Operators returns the operator set symbol runs are checked against.
func Operators() []string { return definition.Set(setOperators) }
