package runtime

import "fmt"

// ErrorKind classifies the fatal evaluation errors. There is no recovery:
// every kind aborts the run.
type ErrorKind string

const (
	NameError     ErrorKind = "NameError"
	TypeError     ErrorKind = "TypeError"
	ArityError    ErrorKind = "ArityError"
	IndexError    ErrorKind = "IndexError"
	DivisionError ErrorKind = "DivisionError"
	ValueError    ErrorKind = "ValueError"
)

// Error is an evaluation failure with its kind attached, so callers can
// distinguish error classes with errors.As.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Errorf builds an Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
