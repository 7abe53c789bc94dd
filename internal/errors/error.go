package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryDescriptor Category = "descriptor"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Location represents a source location inside a descriptor or config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// VjsxError is a structured error with source location and suggestion.
type VjsxError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// contextStart is the line number of Context[0].
	contextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VjsxError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VjsxError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds source location to the error and reads the surrounding
// lines when the file is readable.
func (e *VjsxError) WithLocation(file string, line, column int) *VjsxError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context, e.contextStart = readContextLines(file, line, 3)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VjsxError) WithSuggestion(s string) *VjsxError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *VjsxError) WithDetail(d string) *VjsxError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *VjsxError) Wrap(err error) *VjsxError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file
// and returns them with the number of the first returned line.
func readContextLines(filename string, targetLine, contextSize int) ([]string, int) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := max(1, targetLine-contextSize/2)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines, startLine
}

// New creates a VjsxError from a registered error code.
func New(code string) *VjsxError {
	template, ok := GetTemplate(code)
	if !ok {
		return &VjsxError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VjsxError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// FromError wraps a standard error in a VjsxError. Errors that already are
// a *VjsxError are returned unchanged.
func FromError(err error, code string) *VjsxError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VjsxError); ok {
		return ve
	}
	return New(code).Wrap(err)
}
