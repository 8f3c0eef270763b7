package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/factlang/factlex/compiler"
)

func TestDefaultEnv(t *testing.T) {
	require.Equal(t, map[string]string{
		"LD_LIBRARY_PATH":      "/usr/local/home/facter/.opam/4.06.0/lib/z3",
		"CAML_LD_LIBRARY_PATH": "/usr/local/home/facter/.opam/4.06.0/lib/stublibs:/usr/local/home/facter/.opam/4.06.0/lib/ocaml/stublibs:/usr/local/home/facter/.opam/4.06.0/lib/ocaml",
		"MANPATH":              ":/usr/local/home/facter/.opam/4.06.0/man",
		"OCAML_TOPLEVEL_PATH":  "/usr/local/home/facter/.opam/4.06.0/lib/toplevel",
		"PATH":                 "/usr/local/home/facter/.opam/4.06.0/bin:/usr/local/home/facter/.local/bin:/usr/lib/llvm-6.0/bin/:/usr/local/bin:/usr/bin:/bin:/snap/bin",
	}, compiler.DefaultEnv())
}

func TestEnviron(t *testing.T) {
	cfg := compiler.Config{Env: map[string]string{"PATH": "/opt/fact/bin", "FACT_DEBUG": "1"}}
	env := cfg.Environ([]string{"HOME=/home/u", "PATH=/usr/bin", "MANPATH=/x", "PATH=/dup", "TERM"})
	require.Equal(t, []string{
		"HOME=/home/u",
		"PATH=/opt/fact/bin",
		"MANPATH=:/usr/local/home/facter/.opam/4.06.0/man",
		"TERM",
		"CAML_LD_LIBRARY_PATH=/usr/local/home/facter/.opam/4.06.0/lib/stublibs:/usr/local/home/facter/.opam/4.06.0/lib/ocaml/stublibs:/usr/local/home/facter/.opam/4.06.0/lib/ocaml",
		"FACT_DEBUG=1",
		"LD_LIBRARY_PATH=/usr/local/home/facter/.opam/4.06.0/lib/z3",
		"OCAML_TOPLEVEL_PATH=/usr/local/home/facter/.opam/4.06.0/lib/toplevel",
	}, env)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	expected := compiler.Config{
		Compiler: "/opt/fact/bin/factc",
		Options:  []string{"-O2", "--shared"},
		Env:      map[string]string{"PATH": "/opt/fact/bin"},
		WorkDir:  "/tmp/build",
	}
	tests := []struct {
		name    string
		content string
	}{
		{"fact.toml", `
compiler = "/opt/fact/bin/factc"
options = ["-O2", "--shared"]
workdir = "/tmp/build"

[env]
PATH = "/opt/fact/bin"
`},
		{"fact.yaml", `
compiler: /opt/fact/bin/factc
options: [-O2, --shared]
workdir: /tmp/build
env:
  PATH: /opt/fact/bin
`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := compiler.LoadConfig(writeFile(t, test.name, test.content))
			require.NoError(t, err)
			require.Equal(t, expected, cfg)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := compiler.LoadConfig(writeFile(t, "fact.yml", "options: [-v]\n"))
	require.NoError(t, err)
	require.Equal(t, compiler.Config{Compiler: compiler.DefaultCompiler, Options: []string{"-v"}}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	path := writeFile(t, "fact.json", "{}")
	_, err := compiler.LoadConfig(path)
	require.EqualError(t, err, path+`: unsupported config format ".json"`)

	_, err = compiler.LoadConfig(writeFile(t, "fact.yaml", "compilr: factc\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse ")

	_, err = compiler.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read compiler config")
}
