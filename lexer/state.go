package lexer

import "strings"

// State is an immutable snapshot of the lexer's state stack.
//
// The stack is never empty. Push and Pop return new States and never modify the receiver, so
// a State can be stored at the end of every line and later used to resume lexing from there.
type State struct {
	parent *State
	name   string
	depth  int
}

// NewState returns a single-element stack.
func NewState(name string) *State {
	return &State{name: name, depth: 1}
}

// Name of the active (top) state.
func (s *State) Name() string { return s.name }

// Depth is the number of entries on the stack.
func (s *State) Depth() int { return s.depth }

// Push returns a stack with name on top of s.
func (s *State) Push(name string) *State {
	return &State{parent: s, name: name, depth: s.depth + 1}
}

// Pop returns the stack below the top entry.
//
// Popping a single-element stack is a no-op.
func (s *State) Pop() *State {
	if s.parent == nil {
		return s
	}
	return s.parent
}

// Count returns the number of entries named name, eg. the block comment nesting depth.
func (s *State) Count(name string) int {
	n := 0
	for e := s; e != nil; e = e.parent {
		if e.name == name {
			n++
		}
	}
	return n
}

// Equal reports whether two stacks hold the same entries in the same order.
func (s *State) Equal(other *State) bool {
	a, b := s, other
	for a != nil && b != nil {
		if a == b {
			return true
		}
		if a.depth != b.depth || a.name != b.name {
			return false
		}
		a, b = a.parent, b.parent
	}
	return a == nil && b == nil
}

// Names returns the stack entries, bottom first.
func (s *State) Names() []string {
	out := make([]string, s.depth)
	for e, i := s, s.depth-1; e != nil; e, i = e.parent, i-1 {
		out[i] = e.name
	}
	return out
}

func (s *State) String() string {
	return strings.Join(s.Names(), "/")
}
