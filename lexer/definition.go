package lexer

import (
	"fmt"
	"regexp"
	"sort"
)

var macroRe = regexp.MustCompile(`@(\w+)`)

// DefaultStart is the initial state used when a Language does not name one.
const DefaultStart = "root"

// Language is the declarative description a Definition is compiled from.
type Language struct {
	// Kind emitted for input no rule matches.
	DefaultToken Kind
	// Kind emitted for line terminators by Definition.Tokenize. Defaults to DefaultToken.
	LineEnd Kind
	// Initial state. Defaults to DefaultStart.
	Start string
	// Named word sets referenced by "@name" guards in Cases.
	Sets map[string][]string
	// Named regex fragments substituted for "@name" in patterns.
	Macros map[string]string
	// Bracket pairs used by the Brackets outcome.
	Brackets []BracketPair
	// Rules keyed by state.
	States States
}

type compiledRule struct {
	Rule
	re     *regexp.Regexp
	unless *regexp.Regexp
}

// Definition is a compiled Language.
//
// A Definition is immutable and may be shared between goroutines.
type Definition struct {
	lang        Language
	defaultKind Kind
	lineEnd     Kind
	start       string
	rules       map[string][]compiledRule
	sets        map[string]map[string]bool
	brackets    map[string]bracket
}

// Must compiles a Language and panics if it is incorrect.
func Must(lang Language) *Definition {
	def, err := New(lang)
	if err != nil {
		panic(err)
	}
	return def
}

// New compiles a Language into a Definition.
func New(lang Language) (*Definition, error) {
	d := &Definition{
		lang:        copyLanguage(lang),
		defaultKind: lang.DefaultToken,
		lineEnd:     lang.LineEnd,
		start:       lang.Start,
		rules:       map[string][]compiledRule{},
		sets:        map[string]map[string]bool{},
		brackets:    map[string]bracket{},
	}
	if d.start == "" {
		d.start = DefaultStart
	}
	if d.lineEnd == "" {
		d.lineEnd = d.defaultKind
	}
	if _, ok := lang.States[d.start]; !ok {
		return nil, Errorf(d.start, -1, "initial state is not defined")
	}
	for name, words := range lang.Sets {
		set := make(map[string]bool, len(words))
		for _, word := range words {
			set[word] = true
		}
		d.sets[name] = set
	}
	for _, pair := range lang.Brackets {
		d.brackets[pair.Open] = bracket{kind: pair.Kind, side: BracketOpen}
		d.brackets[pair.Close] = bracket{kind: pair.Kind, side: BracketClose}
	}
	for _, state := range sortedStates(lang.States) {
		rules, err := d.expand(lang, state, map[string]bool{})
		if err != nil {
			return nil, err
		}
		d.rules[state] = rules
	}
	return d, nil
}

// expand compiles the rules of state, splicing in included states.
func (d *Definition) expand(lang Language, state string, visiting map[string]bool) ([]compiledRule, error) {
	if visiting[state] {
		return nil, Errorf(state, -1, "include cycle")
	}
	visiting[state] = true
	defer delete(visiting, state)
	var out []compiledRule
	for i, rule := range lang.States[state] {
		if target, ok := includeOf(rule); ok {
			if _, ok := lang.States[target]; !ok {
				return nil, Errorf(state, i, "invalid include state %q", target)
			}
			included, err := d.expand(lang, target, visiting)
			if err != nil {
				return nil, err
			}
			out = append(out, included...)
			continue
		}
		compiled, err := d.compile(lang, state, i, rule)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

func (d *Definition) compile(lang Language, state string, index int, rule Rule) (compiledRule, error) {
	if rule.Token == nil {
		return compiledRule{}, Errorf(state, index, "rule has no token outcome")
	}
	if push, ok := rule.Action.(ActionPush); ok {
		if _, ok := lang.States[push.State]; !ok {
			return compiledRule{}, Errorf(state, index, "push to undefined state %q", push.State)
		}
	}
	re, err := compilePattern(lang.Macros, rule.Pattern)
	if err != nil {
		return compiledRule{}, Errorf(state, index, "%s", err)
	}
	out := compiledRule{Rule: rule, re: re}
	if rule.Unless != "" {
		out.unless, err = compilePattern(lang.Macros, rule.Unless)
		if err != nil {
			return compiledRule{}, Errorf(state, index, "unless: %s", err)
		}
	}
	if err := d.checkOutcome(rule.Token, re.NumSubexp()); err != nil {
		return compiledRule{}, Errorf(state, index, "%s", err)
	}
	return out, nil
}

func (d *Definition) checkOutcome(outcome Outcome, groups int) error {
	switch outcome := outcome.(type) {
	case Cases:
		for _, cs := range outcome {
			if cs.Guard == DefaultGuard || len(cs.Guard) < 2 || cs.Guard[0] != '@' {
				continue
			}
			if _, ok := d.sets[cs.Guard[1:]]; !ok {
				return fmt.Errorf("case guard references unknown set %q", cs.Guard)
			}
		}
	case Groups:
		if len(outcome) == 0 || len(outcome) != groups {
			return fmt.Errorf("pattern has %d groups but %d outcomes were given", groups, len(outcome))
		}
		for _, sub := range outcome {
			if _, ok := sub.(Groups); ok {
				return fmt.Errorf("groups may not be nested")
			}
			if err := d.checkOutcome(sub, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// compilePattern expands macros and anchors pattern at the start of the input.
func compilePattern(macros map[string]string, pattern string) (*regexp.Regexp, error) {
	var err error
	// Macros may refer to other macros; bound the expansion to catch cycles.
	for i := 0; i < 8 && macroRe.MatchString(pattern); i++ {
		pattern = macroRe.ReplaceAllStringFunc(pattern, func(s string) string {
			name := s[1:]
			macro, ok := macros[name]
			if !ok {
				err = fmt.Errorf("unknown macro %q", s)
				return s
			}
			return "(?:" + macro + ")"
		})
		if err != nil {
			return nil, err
		}
	}
	if macroRe.MatchString(pattern) {
		return nil, fmt.Errorf("macro expansion too deep in %q", pattern)
	}
	return regexp.Compile("^(?:" + pattern + ")")
}

// InitialState returns a fresh single-element stack for the start of a document.
func (d *Definition) InitialState() *State {
	return NewState(d.start)
}

// DefaultKind is the kind emitted for input no rule matches.
func (d *Definition) DefaultKind() Kind { return d.defaultKind }

// InSet reports whether word is a member of the named set.
func (d *Definition) InSet(set, word string) bool {
	return d.sets[set][word]
}

// Set returns a copy of the named word set, in declaration order.
func (d *Definition) Set(name string) []string {
	words, ok := d.lang.Sets[name]
	if !ok {
		return nil
	}
	return append([]string(nil), words...)
}

// States returns the names of all states, sorted.
func (d *Definition) States() []string {
	return sortedStates(d.lang.States)
}

// Rules returns the Language's rules for state, with includes left unexpanded.
func (d *Definition) Rules(state string) []Rule {
	return append([]Rule(nil), d.lang.States[state]...)
}

func sortedStates(states States) []string {
	keys := make([]string, 0, len(states))
	for key := range states {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func copyLanguage(lang Language) Language {
	out := lang
	out.Sets = make(map[string][]string, len(lang.Sets))
	for name, words := range lang.Sets {
		out.Sets[name] = append([]string(nil), words...)
	}
	out.Macros = make(map[string]string, len(lang.Macros))
	for name, macro := range lang.Macros {
		out.Macros[name] = macro
	}
	out.Brackets = append([]BracketPair(nil), lang.Brackets...)
	out.States = make(States, len(lang.States))
	for name, rules := range lang.States {
		out.States[name] = append([]Rule(nil), rules...)
	}
	return out
}
