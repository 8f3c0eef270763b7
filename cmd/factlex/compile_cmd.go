package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/factlang/factlex/compiler"
)

type compileCmd struct {
	Config   string `type:"existingfile" help:"Compiler configuration (.toml, .yaml or .yml)."`
	Compiler string `help:"Compiler executable, overriding the configuration."`
	Output   string `short:"o" required:"" help:"Output file."`
	File     string `arg:"" type:"existingfile" help:"Source file."`
}

func (c *compileCmd) Run(log *zap.Logger) error {
	cfg := compiler.DefaultConfig()
	if c.Config != "" {
		var err error
		cfg, err = compiler.LoadConfig(c.Config)
		if err != nil {
			return err
		}
	}
	if c.Compiler != "" {
		cfg.Compiler = c.Compiler
	}
	result, err := compiler.New(cfg, compiler.WithLogger(log)).Compile(context.Background(), c.File, c.Output)
	if err != nil {
		return err
	}
	os.Stdout.WriteString(result.Stdout) // nolint: errcheck
	os.Stderr.WriteString(result.Stderr) // nolint: errcheck
	if result.ExitCode != 0 {
		return fmt.Errorf("%s: compiler exited with status %d", result.InputBase, result.ExitCode)
	}
	return nil
}
