package schedule

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when weeks are requested for an empty day sequence.
var ErrEmptyInput = errors.New("no days to partition into weeks")

// ParseError reports a numeric lesson field that could not be parsed.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DateParseError reports a lesson date that is malformed or not a real calendar date.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid lesson date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
