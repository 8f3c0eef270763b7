// Package theme renders lexed lines with terminal styles chosen by token kind.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/factlang/factlex"
	"github.com/factlang/factlex/lexer"
)

// Theme maps token kinds to styles.
//
// Lookup falls back along the dotted kind, so a style for "string" also applies to
// "string.escape" unless that has its own.
type Theme struct {
	base   lipgloss.Style
	styles map[lexer.Kind]lipgloss.Style
}

// New creates a Theme that renders every kind with base.
func New(base lipgloss.Style) *Theme {
	return &Theme{base: base, styles: map[lexer.Kind]lipgloss.Style{}}
}

// Set the style for kind and its descendants.
func (t *Theme) Set(kind lexer.Kind, style lipgloss.Style) *Theme {
	t.styles[kind] = style
	return t
}

// Style returns the style for kind.
func (t *Theme) Style(kind lexer.Kind) lipgloss.Style {
	name := string(kind)
	for name != "" {
		if style, ok := t.styles[lexer.Kind(name)]; ok {
			return style
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return t.base
}

// RenderLine renders line using tokens produced for it.
//
// Text not covered by any token is rendered with the base style.
func (t *Theme) RenderLine(line string, tokens []lexer.Token) string {
	w := &strings.Builder{}
	pos := 0
	for _, token := range tokens {
		if token.Start < pos || token.End > len(line) {
			continue
		}
		if token.Start > pos {
			w.WriteString(t.base.Render(line[pos:token.Start]))
		}
		w.WriteString(t.Style(token.Kind).Render(line[token.Start:token.End]))
		pos = token.End
	}
	if pos < len(line) {
		w.WriteString(t.base.Render(line[pos:]))
	}
	return w.String()
}

// Render a lexed document, separating lines with "\n".
func (t *Theme) Render(doc *lexer.Document) string {
	w := &strings.Builder{}
	for i := 0; i < doc.Lines(); i++ {
		if i > 0 {
			w.WriteByte('\n')
		}
		w.WriteString(t.RenderLine(doc.LineText(i), doc.Line(i)))
	}
	return w.String()
}

// Default returns the standard palette for the fact token kinds.
func Default(r *lipgloss.Renderer) *Theme {
	style := func(color string) lipgloss.Style {
		s := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		return s
	}
	return New(style("")).
		Set(factlex.Keyword, style("#C586C0").Bold(true)).
		Set(factlex.TypeIdentifier, style("#4EC9B0")).
		Set(factlex.Identifier, style("#9CDCFE")).
		Set(factlex.Operator, style("#D4D4D4")).
		Set(factlex.Delimiter, style("#808080")).
		Set(factlex.Annotation, style("#DCDCAA")).
		Set(factlex.Number, style("#B5CEA8")).
		Set(factlex.String, style("#CE9178")).
		Set(factlex.StringEscape, style("#D7BA7D")).
		Set(factlex.Comment, style("#6A9955").Italic(true)).
		Set(factlex.AnnotationInvalid, style("#F44747").Underline(true)).
		Set(factlex.StringInvalid, style("#F44747").Underline(true)).
		Set(factlex.StringEscapeInvalid, style("#F44747").Underline(true)).
		Set(factlex.CommentInvalid, style("#F44747").Underline(true)).
		Set(factlex.Invalid, style("#F44747").Underline(true))
}
