// Package compiler invokes the external fact compiler.
//
// It only builds the command line and execution environment and hands them to an Executor;
// it has no knowledge of the lexer.
package compiler

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Command is a fully resolved compiler invocation.
type Command struct {
	Path string
	Args []string
	Env  []string
	Dir  string
}

// Result of running the compiler.
//
// A non-zero ExitCode is not an error; the compiler's diagnostics are in Stderr.
type Result struct {
	// Input file name without directory or extension, for diagnostics.
	InputBase string
	ExitCode  int
	Stdout    string
	Stderr    string
}

// Executor runs a Command.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (*Result, error)
}

// ProcessExecutor runs commands as child processes.
type ProcessExecutor struct{}

// Execute cmd, capturing its output.
func (ProcessExecutor) Execute(ctx context.Context, cmd Command) (*Result, error) {
	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	proc.Env = cmd.Env
	proc.Dir = cmd.Dir
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	proc.Stdout, proc.Stderr = stdout, stderr
	err := proc.Run()
	result := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "run %s", cmd.Path)
	}
	return result, nil
}

// An Option configures a Compiler.
type Option func(c *Compiler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// WithExecutor replaces the ProcessExecutor.
func WithExecutor(executor Executor) Option {
	return func(c *Compiler) {
		c.exec = executor
	}
}

// WithBaseEnv sets the environment DefaultEnv and the configured variables are applied to.
// The default is os.Environ().
func WithBaseEnv(env []string) Option {
	return func(c *Compiler) {
		c.baseEnv = env
	}
}

// Compiler invokes the fact compiler.
type Compiler struct {
	cfg     Config
	log     *zap.Logger
	exec    Executor
	baseEnv []string
}

// New creates a Compiler.
func New(cfg Config, options ...Option) *Compiler {
	if cfg.Compiler == "" {
		cfg.Compiler = DefaultCompiler
	}
	c := &Compiler{
		cfg:     cfg,
		log:     zap.NewNop(),
		exec:    ProcessExecutor{},
		baseEnv: os.Environ(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// InputBase is the file name of path without its directory or extension.
func InputBase(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Command builds the invocation "<compiler> <options...> -o <output> <input>".
func (c *Compiler) Command(input, output string) Command {
	args := make([]string, 0, len(c.cfg.Options)+3)
	args = append(args, c.cfg.Options...)
	args = append(args, "-o", output, input)
	return Command{
		Path: c.cfg.Compiler,
		Args: args,
		Env:  c.cfg.Environ(c.baseEnv),
		Dir:  c.cfg.WorkDir,
	}
}

// Compile input to output. The compiler is run once; failures are not retried.
func (c *Compiler) Compile(ctx context.Context, input, output string) (*Result, error) {
	base := InputBase(input)
	cmd := c.Command(input, output)
	c.log.Debug("Invoking compiler",
		zap.String("inputBase", base),
		zap.String("compiler", cmd.Path),
		zap.Strings("args", cmd.Args))
	result, err := c.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s", base)
	}
	result.InputBase = base
	c.log.Debug("Compiler finished", zap.String("inputBase", base), zap.Int("exitCode", result.ExitCode))
	return result, nil
}
