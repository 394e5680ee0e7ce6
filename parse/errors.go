package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyToken is reported when nothing usable is left of the input
	ErrEmptyToken = errors.New("empty token")

	// ErrUnknownToken is reported for a token that is neither a number nor a joiner word
	ErrUnknownToken = errors.New("unknown token")

	// ErrOutOfRange is reported when the seconds do not fit into a time.Duration
	ErrOutOfRange = errors.New("duration out of range")
)

// Error describes why an input could not be parsed
type Error struct {
	// Input is the text that was parsed
	Input string

	// Token is the offending token with any leading digits stripped
	Token string

	// Err is one of ErrEmptyToken, ErrUnknownToken or ErrOutOfRange
	Err error
}

func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("unable to parse: %s", e.Token)
	}
	return fmt.Sprintf("unable to parse: %s", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
