package errutils

import "emperror.dev/errors"

// As is a wrapper around errors.As using generics that returns the concrete
// error type if err is of type T.
func As[T error](err error) (T, bool) {
	var concreteErr T
	if err == nil {
		return concreteErr, false
	}
	ok := errors.As(err, &concreteErr)
	return concreteErr, ok
}

// ExitCoder is implemented by errors that carry the process exit status they
// should produce.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitCode returns the exit status for err: 0 for nil, the code of the first
// ExitCoder in the chain, or 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ec, ok := As[ExitCoder](err); ok {
		return ec.ExitCode()
	}
	return 1
}

// ErrExitSilently indicates that the program should exit with Status without
// printing anything further. Commands return it after reporting the problem
// themselves, since returning nil from RunE would exit with status 0.
type ErrExitSilently struct {
	Status int
}

func (e ErrExitSilently) Error() string {
	return "<exit silently>"
}

func (e ErrExitSilently) ExitCode() int {
	return e.Status
}
