// Package units holds the Norwegian duration vocabulary shared by the parser
// and the formatter. The table is built once at init and never modified.
package units

import (
	"fmt"
	"strings"
)

// Format selects an output style for stringified durations
type Format string

const (
	// Chrono renders a clock-like, zero padded string such as 1:01:01
	Chrono Format = "chrono"
	// Micro renders a single letter per unit without spaces, e.g. 1t 1n 1s
	Micro Format = "micro"
	// Short renders abbreviated words, e.g. 1 tm 1 min 1 sek
	Short Format = "short"
	// Long renders full words, e.g. 1 time 1 minutt 1 sekund
	Long Format = "long"
)

// DefaultFormat is used when no format is requested
const DefaultFormat = Short

// WordChars enumerates the characters that continue a word. A unit pattern
// only matches when the following character is not one of these.
const WordChars = `A-Za-z0-9_æøåÆØÅ`

// YearWord is the year label, which does not inflect in the plural
const YearWord = "år"

var formats = []Format{Chrono, Micro, Short, Long}

// Formats returns all recognized output formats
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat converts a format name into a Format. An empty name yields the default format.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return DefaultFormat, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f.Valid() {
		return f, nil
	}
	return "", fmt.Errorf("format cannot be '%s', and must be one of %s", s, formatList())
}

// Valid reports whether f is one of the recognized formats
func (f Format) Valid() bool {
	for _, v := range formats {
		if f == v {
			return true
		}
	}
	return false
}

func (f Format) String() string {
	return string(f)
}

func formatList() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = "'" + string(f) + "'"
	}
	return strings.Join(names, ", ")
}

// Unit describes one duration granularity
type Unit struct {
	// Name is the English identifier of the unit, e.g. "minutes"
	Name string

	// Scale is the number of seconds in one unit
	Scale int64

	// Patterns are the recognition patterns, tried in order
	Patterns []string

	// Decompose tells whether the unit takes part in stringify decomposition by default
	Decompose bool

	forms map[Format]string
}

// Form returns the display string of the unit for the given format
func (u Unit) Form(f Format) string {
	return u.forms[f]
}

// Forms returns a copy of the display strings keyed by format
func (u Unit) Forms() map[Format]string {
	m := make(map[Format]string, len(u.forms))
	for k, v := range u.forms {
		m[k] = v
	}
	return m
}

func (u Unit) clone() Unit {
	u.Patterns = append([]string(nil), u.Patterns...)
	u.forms = u.Forms()
	return u
}

// Largest first. The bare "m" is reserved for months, minutes use "n".
var table = []Unit{
	{
		Name:      "years",
		Scale:     31536000,
		Patterns:  []string{`år?`, `a`},
		Decompose: true,
		forms:     map[Format]string{Chrono: ":", Micro: "a", Short: "år", Long: "år"},
	},
	{
		Name:      "months",
		Scale:     2628000,
		Patterns:  []string{`måned(er)?`, `månad(er)?`, `mnd?`, `m`},
		Decompose: true,
		forms:     map[Format]string{Chrono: ":", Micro: "m", Short: "mnd", Long: "måned"},
	},
	{
		Name:      "weeks",
		Scale:     604800,
		Patterns:  []string{`uker?`, `veker?`, `uk?`, `vk?`},
		Decompose: false,
		forms:     map[Format]string{Chrono: ":", Micro: "u", Short: "uk", Long: "uke"},
	},
	{
		Name:      "days",
		Scale:     86400,
		Patterns:  []string{`dag(er)?`, `dag`, `dgr?`, `d`},
		Decompose: true,
		forms:     map[Format]string{Chrono: ":", Micro: "d", Short: "dg", Long: "dag"},
	},
	{
		Name:      "hours",
		Scale:     3600,
		Patterns:  []string{`timer?`, `tmr?`, `t`},
		Decompose: true,
		forms:     map[Format]string{Chrono: ":", Micro: "t", Short: "tm", Long: "time"},
	},
	{
		Name:      "minutes",
		Scale:     60,
		Patterns:  []string{`minutt(er)?`, `mi?n`, `n`},
		Decompose: true,
		forms:     map[Format]string{Chrono: ":", Micro: "n", Short: "min", Long: "minutt"},
	},
	{
		Name:      "seconds",
		Scale:     1,
		Patterns:  []string{`sekund(er)?`, `sek?`, `s`},
		Decompose: true,
		forms:     map[Format]string{Chrono: "", Micro: "s", Short: "sek", Long: "sekund"},
	},
}

var byName = map[string]int{}

func init() {
	for i, u := range table {
		if i > 0 && u.Scale >= table[i-1].Scale {
			panic(fmt.Sprintf("units: %s is not smaller than %s", u.Name, table[i-1].Name))
		}
		for _, f := range formats {
			if _, ok := u.forms[f]; !ok {
				panic(fmt.Sprintf("units: %s has no %s form", u.Name, f))
			}
		}
		byName[u.Name] = i
	}
}

// All returns the units ordered from the largest to the smallest
func All() []Unit {
	list := make([]Unit, len(table))
	for i, u := range table {
		list[i] = u.clone()
	}
	return list
}

// Decomposition returns the units used to break a number of seconds apart,
// largest first. Weeks are only included when requested.
func Decomposition(weeks bool) []Unit {
	var list []Unit
	for _, u := range table {
		if u.Decompose || (weeks && u.Name == "weeks") {
			list = append(list, u.clone())
		}
	}
	return list
}

// Lookup returns the unit with the given name
func Lookup(name string) (Unit, bool) {
	i, ok := byName[strings.ToLower(name)]
	if !ok {
		return Unit{}, false
	}
	return table[i].clone(), true
}
