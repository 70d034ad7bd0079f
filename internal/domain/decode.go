package domain

import (
	"errors"
	"fmt"
)

type DecodeErrorKind int

const (
	// Unreadable means the file could not be opened or read.
	Unreadable DecodeErrorKind = iota + 1
	// Corrupt means the bytes were read but are not a valid image.
	Corrupt
)

func (k DecodeErrorKind) String() string {
	switch k {
	case Unreadable:
		return "unreadable"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// DecodeError is the failure result of decoding a candidate image.
type DecodeError struct {
	Kind DecodeErrorKind
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeKind returns the kind of the DecodeError in err's chain.
// Any other error counts as Unreadable.
func DecodeKind(err error) DecodeErrorKind {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr.Kind
	}
	return Unreadable
}
