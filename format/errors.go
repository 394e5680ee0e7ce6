package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nmeilick/juration/units"
)

var (
	// ErrNotFinite is reported for NaN and infinite seconds
	ErrNotFinite = errors.New("unable to stringify a non-numeric value")

	// ErrUnknownFormat is reported for a format that is not recognized
	ErrUnknownFormat = errors.New("unknown format")
)

// Error describes why a value could not be stringified
type Error struct {
	// Format is the rejected format name, if any
	Format string

	// Err is ErrNotFinite or ErrUnknownFormat
	Err error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnknownFormat) {
		names := make([]string, 0, 4)
		for _, f := range units.Formats() {
			names = append(names, "'"+f.String()+"'")
		}
		return fmt.Sprintf("format cannot be '%s', and must be one of %s", e.Format, strings.Join(names, ", "))
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
