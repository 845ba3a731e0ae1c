package rrsched

import (
	"errors"
	"fmt"
)

var (
	ErrEndOfInput       = errors.New("reached end of input while looking for another integer")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrOverflow         = errors.New("integer overflows 32 bits")

	ErrZeroQuantum = errors.New("quantum must be at least 1")
	ErrNoProcesses = errors.New("process table is empty")
)

type LexKind int

const (
	EndOfInput LexKind = iota
	InvalidCharacter
	Overflow
)

func (k LexKind) String() string {
	return []string{"end of input", "invalid character", "overflow"}[k]
}

// LexError reports where the lexer gave up. errors.Is matches it against
// ErrEndOfInput, ErrInvalidCharacter and ErrOverflow.
type LexError struct {
	Kind   LexKind
	Offset int
	Char   byte
}

func (e *LexError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("%v %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
	case Overflow:
		return fmt.Sprintf("%v at offset %d", ErrOverflow, e.Offset)
	default:
		return ErrEndOfInput.Error()
	}
}

func (e *LexError) Is(target error) bool {
	switch e.Kind {
	case EndOfInput:
		return target == ErrEndOfInput
	case InvalidCharacter:
		return target == ErrInvalidCharacter
	case Overflow:
		return target == ErrOverflow
	}
	return false
}
