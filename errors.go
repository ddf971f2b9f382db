package htmlselect

import "fmt"

// SyntaxError is returned when a CSS selector string cannot be compiled.
type SyntaxError struct {
	Input  string // the selector text as given
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid CSS selector %q: %s", e.Input, e.Reason)
}

func syntaxErr(input, format string, args ...any) error {
	return &SyntaxError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
