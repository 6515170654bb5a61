package errors

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
	CategoryExport Category = "export"
)

// Location is a position in a file the user edits (slider.json).
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

// SliderError is a coded error with an optional file location and a hint.
type SliderError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, cli, export).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location points into the offending file, if any.
	Location *Location

	// Context contains the lines around Location, starting at ContextStart.
	Context      []string
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SliderError) Error() string {
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
func (e *SliderError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location and reads the surrounding lines.
func (e *SliderError) WithLocation(file string, line, column int) *SliderError {
	e.Location = &Location{File: file, Line: line, Column: column}
	f, err := os.Open(file)
	if err != nil {
		return e
	}
	defer f.Close()
	e.ContextStart, e.Context = readContextLines(f, line, 5)
	return e
}

// WithSource is WithLocation for content already in memory.
func (e *SliderError) WithSource(file string, data []byte, line, column int) *SliderError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.ContextStart, e.Context = readContextLines(bytes.NewReader(data), line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SliderError) WithSuggestion(s string) *SliderError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *SliderError) WithDetail(d string) *SliderError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *SliderError) Wrap(err error) *SliderError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number.
func readContextLines(r io.Reader, targetLine, contextSize int) (int, []string) {
	var lines []string
	scanner := bufio.NewScanner(r)
	lineNum := 0
	startLine := max(targetLine-contextSize/2, 1)
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

	return startLine, lines
}

// New creates a SliderError from a registered error code.
func New(code string) *SliderError {
	template, ok := registry[code]
	if !ok {
		return &SliderError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SliderError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new SliderError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SliderError {
	return &SliderError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SliderError. Errors that already
// carry a SliderError anywhere in their chain are returned as that error.
func FromError(err error, code string) *SliderError {
	if err == nil {
		return nil
	}
	var se *SliderError
	if stderrors.As(err, &se) {
		return se
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err carries a SliderError with the given code.
func HasCode(err error, code string) bool {
	var se *SliderError
	return stderrors.As(err, &se) && se.Code == code
}
