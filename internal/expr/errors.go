package expr

import "fmt"

// Error is the base interface for all expression errors.
type Error interface {
	error
	Position() Position
}

// baseError provides common error functionality.
type baseError struct {
	pos Position
	msg string
}

func (e *baseError) Position() Position { return e.pos }
func (e *baseError) Error() string {
	if e.pos.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.pos.File, e.pos.Line, e.pos.Column, e.msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
}

// LexError represents an error during lexical analysis.
type LexError struct {
	baseError
}

// NewLexError creates a new lexer error.
func NewLexError(pos Position, msg string) *LexError {
	return &LexError{baseError: baseError{pos: pos, msg: msg}}
}

// ParseError represents an error during parsing.
type ParseError struct {
	baseError
}

// NewParseError creates a new parser error.
func NewParseError(pos Position, msg string) *ParseError {
	return &ParseError{baseError: baseError{pos: pos, msg: msg}}
}

// NewParseErrorf creates a new parser error with formatting.
func NewParseErrorf(pos Position, format string, args ...any) *ParseError {
	return &ParseError{baseError: baseError{pos: pos, msg: fmt.Sprintf(format, args...)}}
}

// EvalError represents an error during evaluation.
type EvalError struct {
	baseError
	Cause error // Underlying engine error, if any
}

// NewEvalErrorf creates a new evaluation error with formatting.
func NewEvalErrorf(pos Position, format string, args ...any) *EvalError {
	return &EvalError{baseError: baseError{pos: pos, msg: fmt.Sprintf(format, args...)}}
}

// WrapEvalError wraps an underlying error as an evaluation error.
func WrapEvalError(pos Position, msg string, cause error) *EvalError {
	return &EvalError{
		baseError: baseError{pos: pos, msg: msg},
		Cause:     cause,
	}
}

func (e *EvalError) Error() string {
	base := e.baseError.Error()
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

func (e *EvalError) Unwrap() error { return e.Cause }
