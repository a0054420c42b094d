package models

import (
	"errors"
	"fmt"
)

// ErrNoInput indicates no data file was found.
var ErrNoInput = errors.New("no input file found")

// ErrEmptyInput indicates the data file holds no rows.
var ErrEmptyInput = errors.New("input file is empty")

// MalformedInputError reports input that cannot be framed into record blocks.
type MalformedInputError struct {
	Path   string
	Line   int // 1-based source line, 0 if unknown
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(line int, reason string) *MalformedInputError {
	return &MalformedInputError{Line: line, Reason: reason}
}

// ParseError reports a cell that does not hold the expected number.
type ParseError struct {
	Line   int // 1-based source line
	Column int // 1-based column
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DegenerateAxisError reports a chart whose axes cannot be scaled.
// It is not fatal: the chart is skipped.
type DegenerateAxisError struct {
	Reason string
}

func (e *DegenerateAxisError) Error() string {
	return "degenerate axis: " + e.Reason
}

// UnknownSeriesNameError reports a series name without a style entry.
type UnknownSeriesNameError struct {
	Name string
	Line int
}

func (e *UnknownSeriesNameError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("unknown series name %q at line %d", e.Name, e.Line)
	}
	return fmt.Sprintf("unknown series name %q", e.Name)
}

// IsDegenerate reports whether err is (or wraps) a DegenerateAxisError.
func IsDegenerate(err error) bool {
	var d *DegenerateAxisError
	return errors.As(err, &d)
}
