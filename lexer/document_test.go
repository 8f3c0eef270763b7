package lexer_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/factlang/factlex/lexer"
)

func relex(t *testing.T, doc *lexer.Document) int {
	t.Helper()
	n, err := doc.Relex(context.Background())
	require.NoError(t, err)
	require.True(t, doc.Clean())
	return n
}

func TestDocumentInitialLex(t *testing.T) {
	def := lexer.Must(testLanguage)
	doc := lexer.NewDocument(def, "if a\r\nb\n")
	require.Equal(t, 3, doc.Lines())
	require.False(t, doc.Clean())
	require.Nil(t, doc.Line(0))
	require.Nil(t, doc.EndState(0))

	require.Equal(t, 3, relex(t, doc))
	require.Equal(t, []string{"keyword:if", "white: ", "ident:a"}, describe(doc.Line(0)))
	require.Equal(t, "if a\r\nb\n", doc.Text())
	require.Equal(t, "b", doc.LineText(1))
	require.Equal(t, 0, relex(t, doc))
}

func TestDocumentEditPropagatesState(t *testing.T) {
	def := lexer.Must(testLanguage)
	doc := lexer.NewDocument(def, "a\nb\nc")
	require.Equal(t, 3, relex(t, doc))

	// Opening a comment on the first line changes the state of every following line.
	require.NoError(t, doc.Replace(0, 1, "a {"))
	require.Equal(t, 3, relex(t, doc))
	require.Equal(t, []string{"comment:c"}, describe(doc.Line(2)))
	require.Equal(t, "root/comment", doc.EndState(2).String())

	// An edit inside the comment leaves the following lines' start state unchanged.
	require.NoError(t, doc.Replace(1, 2, "x"))
	require.Equal(t, 1, relex(t, doc))
	require.Equal(t, []string{"comment:x"}, describe(doc.Line(1)))

	// Closing it again relexes the rest.
	require.NoError(t, doc.Replace(0, 1, "a"))
	require.Equal(t, 3, relex(t, doc))
	require.Equal(t, []string{"ident:c"}, describe(doc.Line(2)))
	require.Equal(t, "a\nx\nc", doc.Text())
}

func TestDocumentInsertAndDelete(t *testing.T) {
	def := lexer.Must(testLanguage)
	doc := lexer.NewDocument(def, "a\nb")
	relex(t, doc)

	require.NoError(t, doc.Replace(1, 1, "{x", "y}"))
	require.Equal(t, "a\n{x\ny}\nb", doc.Text())
	require.Equal(t, 2, relex(t, doc))
	require.Equal(t, "root", doc.EndState(3).String())

	require.NoError(t, doc.Replace(1, 3))
	require.Equal(t, "a\nb", doc.Text())
	require.Equal(t, 0, relex(t, doc))

	require.NoError(t, doc.Replace(0, 2))
	require.Equal(t, 1, doc.Lines())
	require.Equal(t, "", doc.Text())
	require.Equal(t, 1, relex(t, doc))

	require.Error(t, doc.Replace(1, 0))
	require.Error(t, doc.Replace(0, 5))
}

func TestDocumentReplaceRejectsLineBreaks(t *testing.T) {
	def := lexer.Must(testLanguage)
	doc := lexer.NewDocument(def, "a\nb")
	relex(t, doc)

	require.EqualError(t, doc.Replace(0, 1, "x", "y\nz"), `replacement line 1 contains a line break: "y\nz"`)
	require.Error(t, doc.Replace(1, 2, "c\r"))
	require.Equal(t, 2, doc.Lines())
	require.Equal(t, "a\nb", doc.Text())
	require.True(t, doc.Clean())
}

func TestDocumentSetText(t *testing.T) {
	def := lexer.Must(testLanguage)
	doc := lexer.NewDocument(def, "a\nb\nc")
	relex(t, doc)

	start, end := doc.SetText("a\nB\nc")
	require.Equal(t, 1, start)
	require.Equal(t, 2, end)
	require.Equal(t, 1, relex(t, doc))
	require.Equal(t, []string{"invalid:B"}, describe(doc.Line(1)))

	start, end = doc.SetText("a\nc")
	require.Equal(t, 1, start)
	require.Equal(t, 1, end)
	require.Equal(t, "a\nc", doc.Text())
	require.Equal(t, 0, relex(t, doc))
}

func TestDocumentCancelledRelexKeepsNoPartialResults(t *testing.T) {
	def := lexer.Must(testLanguage)
	doc := lexer.NewDocument(def, "a\nb")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := doc.Relex(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, n)
	require.False(t, doc.Clean())
	require.Nil(t, doc.Line(0))
	_, err = doc.Tokens()
	require.Error(t, err)

	require.Equal(t, 2, relex(t, doc))
}

func TestDocumentTokensMatchTokenize(t *testing.T) {
	def := lexer.Must(testLanguage)
	text := "if {a\r\nb} x\n\"s"
	doc := lexer.NewDocument(def, text)
	relex(t, doc)
	got, err := doc.Tokens()
	require.NoError(t, err)
	want, end := def.Tokenize(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document tokens differ from Tokenize (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(end.Names(), doc.EndState(doc.Lines()-1).Names()); diff != "" {
		t.Fatalf("end state differs (-want +got):\n%s", diff)
	}
}
