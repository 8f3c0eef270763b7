package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/factlang/factlex/lexer"
)

type schemaCmd struct {
	Compact  bool   `help:"Do not indent the output."`
	Validate string `type:"existingfile" placeholder:"FILE" help:"Validate a tokenizer JSON file instead of printing one."`
}

func (c *schemaCmd) Help() string {
	return `
Prints the tokenizer in the JSON shape accepted by Monarch-style highlighters: word sets and
regex macros as top-level properties and a "tokenizer" object of per-state rule arrays.
`
}

func (c *schemaCmd) Run(log *zap.Logger, def *lexer.Definition) error {
	if c.Validate != "" {
		data, err := os.ReadFile(c.Validate)
		if err != nil {
			return err
		}
		if err := lexer.ValidateSchema(data); err != nil {
			return fmt.Errorf("%s: %w", c.Validate, err)
		}
		log.Info("Tokenizer schema is valid", zap.String("file", c.Validate))
		return nil
	}
	data, err := def.MarshalJSON()
	if err != nil {
		return err
	}
	if err := lexer.ValidateSchema(data); err != nil {
		return err
	}
	if !c.Compact {
		w := &bytes.Buffer{}
		if err := json.Indent(w, data, "", "  "); err != nil {
			return err
		}
		data = w.Bytes()
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
