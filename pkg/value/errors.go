package value

import "fmt"

// ErrorKind classifies an engine error.
type ErrorKind int

// ErrorKind constants for failures originating in the value layer and
// its consumers.
const (
	// InvalidOperation signals an operation that the value does not
	// support, such as calling a non-callable object.
	InvalidOperation ErrorKind = iota
	// UnknownMethod signals method dispatch on an unrecognized name.
	UnknownMethod
	// MissingArgument signals a required argument that was not passed.
	MissingArgument
	// TooManyArguments signals surplus positional arguments.
	TooManyArguments
	// InvalidArguments signals arguments that could not be converted to
	// the expected parameter types.
	InvalidArguments
	// UndefinedError signals use of an undefined value where a defined
	// one is required.
	UndefinedError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidOperation:
		return "invalid operation"
	case UnknownMethod:
		return "unknown method"
	case MissingArgument:
		return "missing argument"
	case TooManyArguments:
		return "too many arguments"
	case InvalidArguments:
		return "invalid arguments"
	case UndefinedError:
		return "undefined value"
	default:
		return "unknown error"
	}
}

// Error is the error type produced by the value layer. Host object
// implementations are free to raise their own kinds through it; the
// layer itself only produces the structural fallbacks.
type Error struct {
	kind  ErrorKind
	msg   string
	cause error
}

// NewError creates an error with the given kind and message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// NewErrorf creates an error with a formatted message.
func NewErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// WrapError attaches an underlying cause to an engine error.
func WrapError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

// Kind returns the error classification.
func (e *Error) Kind() ErrorKind { return e.kind }

func (e *Error) Error() string {
	if e.msg == "" {
		return e.kind.String()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }
