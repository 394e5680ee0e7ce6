// Package parse converts Norwegian duration expressions such as
// "1 time og 30 minutter" into a number of seconds.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nmeilick/juration/units"
	"golang.org/x/text/unicode/norm"
)

var joiners = []string{"og", "pluss", "med"}

// Joiners returns the words that may separate duration components
func Joiners() []string {
	return append([]string(nil), joiners...)
}

type matcher struct {
	unit  units.Unit
	regex *regexp.Regexp
}

var (
	matchers []matcher

	// A run of non-word characters that does not start with the decimal point
	reNonWord = regexp.MustCompile(`[^` + units.WordChars + `.][^` + units.WordChars + `]*`)

	reNumber        = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	reLeadingDigits = regexp.MustCompile(`^\d+`)
)

func init() {
	for _, u := range units.All() {
		for _, p := range u.Patterns {
			matchers = append(matchers, matcher{
				unit:  u,
				regex: compile(p),
			})
		}
	}
}

// compile builds the occurrence regex for a unit pattern. Group 1 is the
// quantity, group 2 the unit word. The trailing group is the word boundary,
// spelled out because \b only knows ASCII letters.
func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(\d+\.\d+|\d+)\s?(` + pattern + `)(?:\s|\d|[^` + units.WordChars + `]|$)`)
}

// Parse returns the number of seconds described by s. Bare numbers count as
// seconds and all components are summed.
func Parse(s string) (float64, error) {
	input := s
	s = norm.NFC.String(s)

	for _, m := range matchers {
		s = substitute(s, m)
	}

	tokens := Tokens(s)
	if len(tokens) == 0 {
		return 0, &Error{Input: input, Err: ErrEmptyToken}
	}

	var sum float64
	for _, t := range tokens {
		if t == "" {
			return 0, &Error{Input: input, Err: ErrEmptyToken}
		}
		v, ok := number(t)
		if !ok {
			return 0, &Error{
				Input: input,
				Token: reLeadingDigits.ReplaceAllString(t, ""),
				Err:   ErrUnknownToken,
			}
		}
		sum += v
	}
	return sum, nil
}

// Duration is like Parse but returns a time.Duration
func Duration(s string) (time.Duration, error) {
	secs, err := Parse(s)
	if err != nil {
		return 0, err
	}
	ns := math.Round(secs * float64(time.Second))
	if ns > math.MaxInt64 || ns < math.MinInt64 {
		return 0, &Error{Input: s, Err: ErrOutOfRange}
	}
	return time.Duration(ns), nil
}

// substitute replaces every occurrence of the matcher's unit in s with its
// value in seconds, padded with spaces.
func substitute(s string, m matcher) string {
	var b strings.Builder
	pos := 0
	for pos <= len(s) {
		loc := m.regex.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[5]
		qty, err := strconv.ParseFloat(s[pos+loc[2]:pos+loc[3]], 64)
		if err != nil {
			// Cannot happen for \d+(\.\d+)?, keep the text as is
			b.WriteString(s[pos:end])
			pos = end
			continue
		}

		b.WriteString(s[pos:start])
		b.WriteString(" ")
		b.WriteString(formatNumber(qty * float64(m.unit.Scale)))
		b.WriteString(" ")
		pos = end
	}
	if pos == 0 {
		return s
	}
	if pos < len(s) {
		b.WriteString(s[pos:])
	}
	return b.String()
}

// Tokens normalizes s and splits it into the tokens that are summed. Runs of
// non-word characters become single spaces and joiner words are dropped. A
// joiner at the end joins nothing and leaves an empty token behind.
func Tokens(s string) []string {
	s = strings.TrimSpace(reNonWord.ReplaceAllString(s, " "))
	if s == "" {
		return nil
	}

	fields := strings.Split(s, " ")
	var tokens []string
	for _, t := range fields {
		if isJoiner(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	if isJoiner(fields[len(fields)-1]) {
		tokens = append(tokens, "")
	}
	return tokens
}

func isJoiner(t string) bool {
	for _, j := range joiners {
		if strings.EqualFold(t, j) {
			return true
		}
	}
	return false
}

func number(t string) (float64, bool) {
	if !reNumber.MatchString(t) {
		return 0, false
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
