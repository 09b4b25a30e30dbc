package english

import "fmt"

// ParseError is returned for every failure, whether the text did not match the grammar
// or the parsed date could not be resolved.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Msg
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Msg)
}

func errorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// withInput attaches the offending text to err when it is a *ParseError.
func withInput(err error, input string) error {
	if pe, ok := err.(*ParseError); ok && pe.Input == "" {
		return &ParseError{Input: input, Msg: pe.Msg}
	}
	return err
}
