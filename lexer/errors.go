package lexer

import "fmt"

// Error is returned by New when a Language is malformed.
//
// State and Index locate the offending rule. Index is -1 for errors that are not tied to a
// single rule.
type Error struct {
	State   string
	Index   int
	Message string
}

// Errorf creates a new Error for the rule at state.index.
func Errorf(state string, index int, format string, args ...interface{}) *Error {
	return &Error{
		State:   state,
		Index:   index,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.State == "" {
		return e.Message
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.State, e.Message)
	}
	return fmt.Sprintf("%s.%d: %s", e.State, e.Index, e.Message)
}
