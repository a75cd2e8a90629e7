package oerror

import "fmt"

// OError is the error type returned by the packages outside of omath. omath itself never fails.
type OError struct {
	Err string
	// cause is the underlying error, if any.
	cause error
}

// New returns an OError with the message formatted from the given format and arguments.
func New(format string, args ...any) *OError {
	return &OError{Err: fmt.Sprintf(format, args...)}
}

// Wrap returns an OError that carries err as its cause.
func Wrap(err error, format string, args ...any) *OError {
	return &OError{Err: fmt.Sprintf(format, args...) + ": " + err.Error(), cause: err}
}

func (e *OError) Error() string {
	return e.Err
}

// Unwrap ...
func (e *OError) Unwrap() error {
	return e.cause
}
