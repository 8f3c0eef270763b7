package compiler

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultCompiler is the compiler executable used when none is configured.
const DefaultCompiler = "factc"

// Config for invoking the fact compiler.
type Config struct {
	// Compiler executable.
	Compiler string `toml:"compiler" yaml:"compiler"`
	// Options passed before "-o <output>".
	Options []string `toml:"options" yaml:"options"`
	// Environment variables overriding DefaultEnv.
	Env map[string]string `toml:"env" yaml:"env"`
	// Working directory of the compiler process.
	WorkDir string `toml:"workdir" yaml:"workdir"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{Compiler: DefaultCompiler}
}

// DefaultEnv is the execution environment of the reference toolchain install.
//
// The compiler is an OCaml program linked against the Z3 solver, so its runtime, stub libraries
// and tools must be resolvable from these paths.
func DefaultEnv() map[string]string {
	const opam = "/usr/local/home/facter/.opam/4.06.0"
	return map[string]string{
		"LD_LIBRARY_PATH":      opam + "/lib/z3",
		"CAML_LD_LIBRARY_PATH": opam + "/lib/stublibs:" + opam + "/lib/ocaml/stublibs:" + opam + "/lib/ocaml",
		"MANPATH":              ":" + opam + "/man",
		"OCAML_TOPLEVEL_PATH":  opam + "/lib/toplevel",
		"PATH":                 opam + "/bin:/usr/local/home/facter/.local/bin:/usr/lib/llvm-6.0/bin/:/usr/local/bin:/usr/bin:/bin:/snap/bin",
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) configuration file.
//
// Settings absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read compiler config")
	}
	cfg := Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &cfg)
	default:
		return Config{}, errors.Errorf("%s: unsupported config format %q", path, ext)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse %s", path)
	}
	if cfg.Compiler == "" {
		cfg.Compiler = DefaultCompiler
	}
	return cfg, nil
}

// Environment is DefaultEnv overlaid with the configured variables.
func (c Config) Environment() map[string]string {
	env := DefaultEnv()
	for key, value := range c.Env {
		env[key] = value
	}
	return env
}

// Environ applies Environment to base, a list of "KEY=value" entries such as os.Environ().
//
// Variables already in base are replaced in place; the rest are appended in sorted order.
func (c Config) Environ(base []string) []string {
	env := c.Environment()
	out := make([]string, 0, len(base)+len(env))
	seen := map[string]bool{}
	for _, entry := range base {
		key := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			key = entry[:i]
		}
		if value, ok := env[key]; ok {
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key+"="+value)
			continue
		}
		out = append(out, entry)
	}
	keys := make([]string, 0, len(env))
	for key := range env {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, key+"="+env[key])
	}
	return out
}
