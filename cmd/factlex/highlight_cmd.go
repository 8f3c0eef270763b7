package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/factlang/factlex/lexer"
	"github.com/factlang/factlex/theme"
)

type highlightCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file."`
}

func (c *highlightCmd) Run(def *lexer.Definition) error {
	doc, err := loadDocument(def, c.File)
	if err != nil {
		return err
	}
	th := theme.Default(lipgloss.NewRenderer(os.Stdout))
	fmt.Println(th.Render(doc))
	return nil
}
