package lexer

import "strings"

// A Rule matching input and possibly changing state.
//
// Pattern is an RE2 expression matched at the current offset. "@name" references are replaced
// with the Language's macro of that name. If Unless is set, a match is rejected when Unless
// matches the input immediately following it, which stands in for the negative lookahead RE2
// does not support.
type Rule struct {
	Pattern string
	Unless  string
	Token   Outcome
	Action  Action
}

// States are the rules of a Language, keyed by state name.
type States map[string][]Rule

// An Outcome turns a match into tokens.
type Outcome interface {
	// emit tokens for the match of text[match[0]:match[1]]. Offsets are relative to text and
	// are translated by offset.
	emit(d *Definition, text string, match []int, offset int) []Token
	schema() interface{}
}

func (k Kind) emit(d *Definition, text string, match []int, offset int) []Token {
	return []Token{{
		Kind:  k,
		Value: text[match[0]:match[1]],
		Start: offset + match[0],
		End:   offset + match[1],
	}}
}

func (k Kind) schema() interface{} { return string(k) }

// A Case maps a guard to a Kind.
//
// Guard is "@default", "@set" for membership in one of the Language's sets, or a literal string
// compared for equality.
type Case struct {
	Guard string
	Kind  Kind
}

// DefaultGuard matches any input.
const DefaultGuard = "@default"

// Cases classify matched text by testing each Case in order.
//
// If no guard matches, the Definition's default kind is used.
type Cases []Case

func (c Cases) resolve(d *Definition, value string) Kind {
	for _, cs := range c {
		switch {
		case cs.Guard == DefaultGuard:
			return cs.Kind
		case strings.HasPrefix(cs.Guard, "@"):
			if d.sets[cs.Guard[1:]][value] {
				return cs.Kind
			}
		case cs.Guard == value:
			return cs.Kind
		}
	}
	return d.defaultKind
}

func (c Cases) emit(d *Definition, text string, match []int, offset int) []Token {
	return c.resolve(d, text[match[0]:match[1]]).emit(d, text, match, offset)
}

func (c Cases) schema() interface{} {
	table := object{}
	for _, cs := range c {
		table = append(table, field{cs.Guard, string(cs.Kind)})
	}
	return object{{"cases", table}}
}

// Groups assigns one Outcome to each capture group of the pattern.
//
// The groups must tile the whole match. If they do not, the match is emitted as a single token
// using the first group's Outcome.
type Groups []Outcome

func (g Groups) emit(d *Definition, text string, match []int, offset int) []Token {
	if !g.tiles(match) {
		return g[0].emit(d, text, match[:2], offset)
	}
	var out []Token
	for i, outcome := range g {
		span := match[2+i*2 : 4+i*2]
		if span[0] == span[1] {
			continue
		}
		out = append(out, outcome.emit(d, text, span, offset)...)
	}
	return out
}

func (g Groups) tiles(match []int) bool {
	if len(match) < 2+len(g)*2 {
		return false
	}
	cursor := match[0]
	for i := range g {
		start, end := match[2+i*2], match[3+i*2]
		if start == -1 {
			continue
		}
		if start != cursor {
			return false
		}
		cursor = end
	}
	return cursor == match[1]
}

func (g Groups) schema() interface{} {
	out := make([]interface{}, 0, len(g))
	for _, outcome := range g {
		out = append(out, outcome.schema())
	}
	return out
}

// Brackets emits tokens classified by the Language's bracket pairs.
//
// Text that is not a declared bracket receives the default kind.
var Brackets Outcome = bracketOutcome{}

type bracketOutcome struct{}

func (bracketOutcome) emit(d *Definition, text string, match []int, offset int) []Token {
	value := text[match[0]:match[1]]
	b, ok := d.brackets[value]
	if !ok {
		return d.defaultKind.emit(d, text, match, offset)
	}
	tokens := b.kind.emit(d, text, match, offset)
	tokens[0].Bracket = b.side
	return tokens
}

func (bracketOutcome) schema() interface{} { return "@brackets" }

// BracketPair declares an open/close pair and the kind both sides are emitted with.
type BracketPair struct {
	Open  string
	Close string
	Kind  Kind
}

type bracket struct {
	kind Kind
	side Bracket
}

// An Action is applied to the state stack when a rule matches.
type Action interface {
	apply(state *State) *State
	next() string
}

// ActionPush pushes State when the Rule matches.
type ActionPush struct{ State string }

func (p ActionPush) apply(state *State) *State { return state.Push(p.State) }
func (p ActionPush) next() string { return "@" + p.State }

// Push to the given state.
//
// The target state will then be the set of rules used for matching until another Push or Pop
// is encountered.
func Push(state string) Action {
	return ActionPush{state}
}

// ActionPushCurrent pushes the current state again when the Rule matches.
type ActionPushCurrent struct{}

func (ActionPushCurrent) apply(state *State) *State { return state.Push(state.Name()) }
func (ActionPushCurrent) next() string { return "@push" }

// PushCurrent pushes another copy of the current state, for constructs that nest.
func PushCurrent() Action {
	return ActionPushCurrent{}
}

// ActionPop pops to the previous state when the Rule matches.
type ActionPop struct{}

func (ActionPop) apply(state *State) *State { return state.Pop() }
func (ActionPop) next() string { return "@pop" }

// Pop to the previous state.
func Pop() Action {
	return ActionPop{}
}

type include struct{ state string }

func (include) apply(state *State) *State { panic("should not be called") }
func (i include) next() string { return "@" + i.state }

// Include rules from another state in this one.
func Include(state string) Rule {
	return Rule{Action: include{state}}
}

func includeOf(rule Rule) (string, bool) {
	if inc, ok := rule.Action.(include); ok {
		return inc.state, true
	}
	return "", false
}
