package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/factlang/factlex"
	"github.com/factlang/factlex/languages"
)

type cliFlags struct {
	Version  kong.VersionFlag
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	Language string `default:"fact" help:"Language to tokenize as."`

	Tokens    tokensCmd    `cmd:"" help:"Print the tokens of a source file."`
	Highlight highlightCmd `cmd:"" help:"Print a source file with syntax highlighting."`
	Schema    schemaCmd    `cmd:"" help:"Print the tokenizer definition as JSON."`
	Watch     watchCmd     `cmd:"" help:"Highlight a source file again whenever it changes."`
	Compile   compileCmd   `cmd:"" help:"Compile a fact source file with the external compiler."`
}

var (
	version string = "dev"
	cli     cliFlags
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Tokenizer and tooling for the fact language.`),
		kong.Vars{"version": version},
	)
	log, err := newLogger(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	defer log.Sync() // nolint: errcheck

	registry := languages.New()
	kctx.FatalIfErrorf(factlex.Register(registry))
	def, ok := registry.Lookup(cli.Language)
	if !ok {
		if suggestion := registry.Suggest(cli.Language); suggestion != "" {
			kctx.Fatalf("unknown language %q, did you mean %q?", cli.Language, suggestion)
		}
		kctx.Fatalf("unknown language %q (known: %v)", cli.Language, registry.IDs())
	}
	err = kctx.Run(log, def)
	kctx.FatalIfErrorf(err)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
