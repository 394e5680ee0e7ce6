package duration

import (
	"errors"
	"fmt"
	"time"

	"github.com/hako/durafmt"
	"github.com/nmeilick/juration/format"
	"github.com/nmeilick/juration/parse"
	"github.com/nmeilick/juration/units"
	"github.com/xhit/go-str2duration/v2"
)

type parser func(string) (time.Duration, error)

func goNotation(s string) (time.Duration, error) {
	return str2duration.ParseDuration(s)
}

func durafmtString(s string) (time.Duration, error) {
	d, err := durafmt.ParseString(s)
	if err != nil {
		return 0, err
	}
	return d.Duration(), nil
}

// Parse parses a duration string, trying extended Go notation ("1h30m",
// "2w") first, then Norwegian ("1 time og 30 minutter") and finally durafmt.
// It is meant for configuration values where "10m" has to mean ten minutes.
func Parse(s string) (time.Duration, error) {
	return parseWith(s, goNotation, parse.Duration, durafmtString)
}

// ParseNorwegian parses a duration string as Norwegian first and falls back
// to Go notation. In Norwegian a bare "m" means months.
func ParseNorwegian(s string) (time.Duration, error) {
	return parseWith(s, parse.Duration, goNotation, durafmtString)
}

func parseWith(s string, parsers ...parser) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	var errs []error
	for _, p := range parsers {
		d, err := p(s)
		if err == nil {
			return d, nil
		}
		errs = append(errs, err)
	}

	return 0, fmt.Errorf("invalid duration format: %w", errors.Join(errs...))
}

// String returns an English, human-readable representation of a duration
func String(d time.Duration) string {
	return durafmt.Parse(d).String()
}

// Norwegian returns the long Norwegian representation of a duration
func Norwegian(d time.Duration) string {
	s, err := format.Duration(d, &format.Options{Format: units.Long})
	if err != nil {
		// a time.Duration is always finite
		return d.String()
	}
	return s
}
