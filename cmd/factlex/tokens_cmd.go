package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fxamacker/cbor/v2"

	"github.com/factlang/factlex/lexer"
)

type tokensCmd struct {
	Format string `short:"f" enum:"text,repr,json,cbor" default:"text" help:"Output format (${enum})."`
	State  bool   `help:"Include the state stack at the end of each line."`
	File   string `arg:"" type:"existingfile" help:"Source file."`
}

func (c *tokensCmd) Help() string {
	return `
The text format prints one token per output line as "<line>:<start>-<end> <kind> <value>".
Offsets are byte offsets within the line. The json and cbor formats encode an array of
{"line", "tokens", "state"} records.
`
}

func (c *tokensCmd) Run(def *lexer.Definition) error {
	doc, err := loadDocument(def, c.File)
	if err != nil {
		return err
	}
	return writeTokens(os.Stdout, c.Format, c.State, doc)
}

// lineTokens is the encoded form of one line for the json and cbor formats.
type lineTokens struct {
	Line   int           `json:"line"`
	Tokens []lexer.Token `json:"tokens"`
	State  string        `json:"state,omitempty"`
}

func writeTokens(w io.Writer, format string, withState bool, doc *lexer.Document) error {
	lines := make([]lineTokens, 0, doc.Lines())
	for i := 0; i < doc.Lines(); i++ {
		line := lineTokens{Line: i + 1, Tokens: doc.Line(i)}
		if line.Tokens == nil {
			line.Tokens = []lexer.Token{}
		}
		if withState {
			line.State = doc.EndState(i).String()
		}
		lines = append(lines, line)
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(lines)

	case "cbor":
		mode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return err
		}
		return mode.NewEncoder(w).Encode(lines)

	case "repr":
		for _, line := range lines {
			repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(line.Tokens)
			if withState {
				fmt.Fprintf(w, "%d:\t@%s\n", line.Line, line.State)
			}
		}
		return nil

	default:
		for _, line := range lines {
			for _, token := range line.Tokens {
				kind := string(token.Kind)
				if kind == "" {
					kind = "-"
				}
				fmt.Fprintf(w, "%d:%d-%d\t%s\t%q\n", line.Line, token.Start, token.End, kind, token.Value)
			}
			if withState {
				fmt.Fprintf(w, "%d:\t@%s\n", line.Line, line.State)
			}
		}
		return nil
	}
}

func loadDocument(def *lexer.Definition, path string) (*lexer.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := lexer.NewDocument(def, string(data))
	if _, err := doc.Relex(context.Background()); err != nil {
		return nil, err
	}
	return doc, nil
}
