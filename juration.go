// Package juration converts between seconds and Norwegian natural-language
// durations such as "2 timer og 30 minutter".
//
// Parse reads an expression and returns the number of seconds it describes.
// Stringify (or its alias Humanize) renders seconds in one of the chrono,
// micro, short or long formats. Both are pure functions and safe for
// concurrent use.
package juration

import (
	_ "embed"
	"time"

	"github.com/nmeilick/juration/format"
	"github.com/nmeilick/juration/parse"
	"github.com/nmeilick/juration/units"
)

// EmbeddedConfig is used when no configuration file is found
//
//go:embed embedded.hcl
var EmbeddedConfig []byte

// Format selects the output style of Stringify
type Format = units.Format

// Options controls Stringify
type Options = format.Options

// Output formats
const (
	Chrono = units.Chrono
	Micro  = units.Micro
	Short  = units.Short
	Long   = units.Long
)

// Parse returns the number of seconds described by s
func Parse(s string) (float64, error) {
	return parse.Parse(s)
}

// ParseDuration returns the duration described by s
func ParseDuration(s string) (time.Duration, error) {
	return parse.Duration(s)
}

// Stringify renders seconds as a Norwegian duration, opts may be nil
func Stringify(seconds float64, opts *Options) (string, error) {
	return format.Stringify(seconds, opts)
}

// Humanize is an alias for Stringify
func Humanize(seconds float64, opts *Options) (string, error) {
	return format.Humanize(seconds, opts)
}

// StringifyDuration renders d as a Norwegian duration
func StringifyDuration(d time.Duration, opts *Options) (string, error) {
	return format.Duration(d, opts)
}
