// Package format renders a number of seconds as a Norwegian duration
// expression in one of the chrono, micro, short or long formats.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nmeilick/juration/units"
)

// Options controls how a duration is rendered. The zero value is usable: an
// empty Format selects units.DefaultFormat instead of being rejected, and a
// UnitCount of zero renders every unit instead of none.
type Options struct {
	// Format is the output style, the zero value means units.DefaultFormat
	Format units.Format

	// UnitCount caps the number of units rendered once the first non-zero
	// unit has been seen. Zero or less means no cap.
	UnitCount int

	// Weeks includes weeks in the decomposition
	Weeks bool
}

var (
	reLeadingZeroGroups = regexp.MustCompile(`^(00:)+`)
	reLeadingZero       = regexp.MustCompile(`^0`)
)

// Stringify renders seconds according to opts, which may be nil
func Stringify(seconds float64, opts *Options) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", &Error{Err: ErrNotFinite}
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Format == "" {
		o.Format = units.DefaultFormat
	} else if !o.Format.Valid() {
		return "", &Error{Format: string(o.Format), Err: ErrUnknownFormat}
	}

	values := decompose(seconds, o)

	var b strings.Builder
	for i, v := range values {
		if o.Format == units.Chrono {
			width := 3
			if i == len(values)-1 {
				width = 2
			}
			b.WriteString(padLeft(v, '0', width))
		} else if !strings.HasPrefix(v, "0") {
			b.WriteString(v)
			b.WriteString(" ")
		}
	}

	out := strings.TrimRight(b.String(), " \t\r\n")
	out = reLeadingZeroGroups.ReplaceAllString(out, "")
	return reLeadingZero.ReplaceAllString(out, ""), nil
}

// Humanize is an alias for Stringify
func Humanize(seconds float64, opts *Options) (string, error) {
	return Stringify(seconds, opts)
}

// Duration renders a time.Duration, sub-second precision is truncated by the decomposition
func Duration(d time.Duration, opts *Options) (string, error) {
	return Stringify(d.Seconds(), opts)
}

// decompose breaks seconds apart largest unit first and renders every
// computed unit with its label. Units after the cap are not computed.
func decompose(seconds float64, o Options) []string {
	var (
		values    []string
		remaining = seconds
		active    int
	)

	for _, u := range units.Decomposition(o.Weeks) {
		if o.UnitCount > 0 && active >= o.UnitCount {
			break
		}
		scale := float64(u.Scale)
		value := math.Floor(remaining / scale)
		if value > 0 || active > 0 {
			active++
		}
		remaining = math.Mod(remaining, scale)

		label := u.Form(o.Format)
		switch o.Format {
		case units.Micro, units.Chrono:
			values = append(values, number(value)+label)
		default:
			values = append(values, number(value)+" "+Pluralize(value, o.Format, label))
		}
	}
	return values
}

// Pluralize returns the label to use for count. A count of one and the
// year word keep the singular form.
func Pluralize(count float64, f units.Format, singular string) string {
	if count == 1 || singular == units.YearWord {
		return singular
	}
	plural := singular
	if f == units.Long && !strings.HasSuffix(singular, "e") {
		plural += "e"
	}
	return plural + "r"
}

// padLeft prefixes s with c until it is n runes long
func padLeft(s string, c rune, n int) string {
	l := len([]rune(s))
	if s == "" || l >= n {
		return s
	}
	return strings.Repeat(string(c), n-l) + s
}

// expThreshold is where counts switch to exponent notation, like JavaScript
// number rendering does
const expThreshold = 1e21

func number(v float64) string {
	if v == 0 {
		// avoid rendering negative zero
		v = 0
	}
	if math.Abs(v) >= expThreshold {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
