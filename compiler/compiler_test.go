package compiler_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/factlang/factlex/compiler"
)

func TestInputBase(t *testing.T) {
	tests := []struct {
		path string
		base string
	}{
		{"/src/main.fact", "main"},
		{"main.fact", "main"},
		{"lib/crypto.tar.gz", "crypto.tar"},
		{"Makefile", "Makefile"},
		{"/home/u/.bashrc", ".bashrc"},
		{"trailing.", "trailing"},
	}
	for _, test := range tests {
		require.Equal(t, test.base, compiler.InputBase(test.path), test.path)
	}
}

func TestCommand(t *testing.T) {
	c := compiler.New(compiler.Config{Options: []string{"-O2"}, WorkDir: "/w"}, compiler.WithBaseEnv([]string{"HOME=/h"}))
	cmd := c.Command("src/main.fact", "out/main.o")
	require.Equal(t, compiler.DefaultCompiler, cmd.Path)
	require.Equal(t, []string{"-O2", "-o", "out/main.o", "src/main.fact"}, cmd.Args)
	require.Equal(t, "/w", cmd.Dir)
	require.Equal(t, "HOME=/h", cmd.Env[0])
	require.Len(t, cmd.Env, 6)
}

type fakeExecutor struct {
	commands []compiler.Command
	result   *compiler.Result
	err      error
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd compiler.Command) (*compiler.Result, error) {
	f.commands = append(f.commands, cmd)
	return f.result, f.err
}

func TestCompile(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	executor := &fakeExecutor{result: &compiler.Result{ExitCode: 2, Stderr: "type error"}}
	c := compiler.New(compiler.Config{Compiler: "factc"},
		compiler.WithExecutor(executor),
		compiler.WithBaseEnv(nil),
		compiler.WithLogger(zap.New(core)))

	result, err := c.Compile(context.Background(), "src/main.fact", "main.o")
	require.NoError(t, err)
	require.Equal(t, &compiler.Result{InputBase: "main", ExitCode: 2, Stderr: "type error"}, result)
	require.Len(t, executor.commands, 1)
	require.Equal(t, "factc", executor.commands[0].Path)
	require.Len(t, executor.commands[0].Env, 5)

	entries := logs.FilterField(zap.String("inputBase", "main")).All()
	require.Len(t, entries, 2)
	require.Equal(t, "Invoking compiler", entries[0].Message)
	require.Equal(t, "Compiler finished", entries[1].Message)
}

func TestCompileExecutorError(t *testing.T) {
	executor := &fakeExecutor{err: errors.New("no such file")}
	c := compiler.New(compiler.Config{}, compiler.WithExecutor(executor))
	_, err := c.Compile(context.Background(), "x/prog.fact", "prog.o")
	require.EqualError(t, err, "compile prog: no such file")
	require.Len(t, executor.commands, 1)
}

func TestProcessExecutor(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	result, err := compiler.ProcessExecutor{}.Execute(context.Background(), compiler.Command{
		Path: "sh",
		Args: []string{"-c", "echo out; echo e >&2; exit 3"},
	})
	require.NoError(t, err)
	require.Equal(t, &compiler.Result{ExitCode: 3, Stdout: "out\n", Stderr: "e\n"}, result)

	result, err = compiler.ProcessExecutor{}.Execute(context.Background(), compiler.Command{
		Path: "sh",
		Args: []string{"-c", "pwd"},
		Dir:  "/",
	})
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode)
	require.Equal(t, "/\n", result.Stdout)

	_, err = compiler.ProcessExecutor{}.Execute(context.Background(), compiler.Command{Path: "/nonexistent/factc"})
	require.Error(t, err)
}
