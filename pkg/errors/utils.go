package errors

import (
	"context"
	"errors"
)

func Is(err, target error) bool {
	if err == nil && target == nil {
		return false
	}
	return errors.Is(err, target)
}

func As[T error](err error, target *T) bool {
	if err == nil {
		return false
	}
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}

func GetErrorCode(err error) Code {
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return ""
}

// ExitCoder is implemented by errors that carry a process status, such as
// *Error and *exec.ExitError.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the process status for err: 0 for nil, the first positive
// code carried by an error in the chain, 124 and 130 for deadline and
// cancellation, otherwise 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if c, ok := e.(ExitCoder); ok && c.ExitCode() > 0 {
			return c.ExitCode()
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeout
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	}

	return ExitFailure
}
