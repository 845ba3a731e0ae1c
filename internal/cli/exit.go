package cli

import (
	"errors"
	"fmt"
	"syscall"

	"rrsched"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitInvalid = int(syscall.EINVAL)
)

// ErrUsage is matched by errors.Is for a wrong number of positional
// arguments. Such failures print nothing.
var ErrUsage = errors.New("wrong number of arguments")

type usageError struct {
	want, got int
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%v: want %d, got %d", ErrUsage, e.want, e.got)
}

func (e *usageError) Is(target error) bool {
	return target == ErrUsage
}

type flagError struct {
	err error
}

func (e *flagError) Error() string {
	return e.err.Error()
}

func (e *flagError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by the root command to a process status.
// Resource failures exit with their errno.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var fe *flagError
	switch {
	case errors.Is(err, ErrUsage), errors.As(err, &fe):
		return ExitInvalid
	case errors.Is(err, rrsched.ErrEndOfInput),
		errors.Is(err, rrsched.ErrInvalidCharacter),
		errors.Is(err, rrsched.ErrOverflow),
		errors.Is(err, rrsched.ErrZeroQuantum),
		errors.Is(err, rrsched.ErrNoProcesses):
		return ExitInvalid
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return ExitFailure
}

// Silent reports whether err should reach the user without a message.
func Silent(err error) bool {
	return errors.Is(err, ErrUsage)
}
