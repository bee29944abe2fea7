package errors

import "fmt"

// InvalidStateError reports a domain object that broke its own invariants,
// e.g. a stored row that could not have been written by this service.
type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(format string, args ...interface{}) *InvalidStateError {
	return &InvalidStateError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.msg
}

// NilArgumentError is what constructors panic with when a required
// dependency is nil.
type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}
