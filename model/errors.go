package model

import "fmt"

// ParseError reports a missing or malformed field in an engine message.
// A turn that fails to parse is abandoned rather than half-planned.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse %s: missing or malformed", e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyInputError is returned by minimum and ranking computations handed no
// candidates, so an empty result is never mistaken for a zero-damage path.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return e.Op + ": no candidate locations"
}
