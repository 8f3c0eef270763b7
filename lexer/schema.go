package lexer

import (
	"bytes"
	"encoding/json"
	"sort"
)

// field of an ordered JSON object.
type field struct {
	Key   string
	Value interface{}
}

// object is a JSON object that preserves key order, which case tables depend on.
type object []field

func (o object) MarshalJSON() ([]byte, error) {
	w := &bytes.Buffer{}
	w.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			w.WriteByte(',')
		}
		key, err := marshal(f.Key)
		if err != nil {
			return nil, err
		}
		w.Write(key)
		w.WriteByte(':')
		value, err := marshal(f.Value)
		if err != nil {
			return nil, err
		}
		w.Write(value)
	}
	w.WriteByte('}')
	return w.Bytes(), nil
}

// MarshalJSON encodes the Language in the shape expected by Monarch-style tokenizer hosts:
// word sets and macros as top-level properties, and each state as an array of
// [pattern, token, next] rules or {"include": "@state"} entries.
func (d *Definition) MarshalJSON() ([]byte, error) {
	lang := d.lang
	out := object{
		{"defaultToken", string(d.defaultKind)},
		{"start", d.start},
	}
	for _, name := range sortedKeys(lang.Sets) {
		out = append(out, field{name, lang.Sets[name]})
	}
	for _, name := range sortedKeys(lang.Macros) {
		out = append(out, field{name, lang.Macros[name]})
	}
	if len(lang.Brackets) > 0 {
		brackets := make([]object, 0, len(lang.Brackets))
		for _, pair := range lang.Brackets {
			brackets = append(brackets, object{
				{"open", pair.Open},
				{"close", pair.Close},
				{"token", string(pair.Kind)},
			})
		}
		out = append(out, field{"brackets", brackets})
	}
	tokenizer := object{}
	for _, state := range d.States() {
		rules := make([]interface{}, 0, len(lang.States[state]))
		for _, rule := range lang.States[state] {
			rules = append(rules, ruleSchema(rule))
		}
		tokenizer = append(tokenizer, field{state, rules})
	}
	out = append(out, field{"tokenizer", tokenizer})
	return marshal(out)
}

// marshal is json.Marshal without HTML escaping, which would mangle "<", ">" and "&" in
// patterns.
func marshal(v interface{}) ([]byte, error) {
	w := &bytes.Buffer{}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(w.Bytes(), []byte("\n")), nil
}

func ruleSchema(rule Rule) interface{} {
	if target, ok := includeOf(rule); ok {
		return object{{"include", "@" + target}}
	}
	pattern := rule.Pattern
	if rule.Unless != "" {
		pattern += "(?!" + rule.Unless + ")"
	}
	entry := []interface{}{pattern, rule.Token.schema()}
	if rule.Action != nil {
		entry = append(entry, rule.Action.next())
	}
	return entry
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
