package response

import (
	"math"
	"time"

	"github.com/nmeilick/juration/units"
)

// ParseResponse is the result of parsing a duration expression
type ParseResponse struct {
	Input    string  `json:"input"`
	Seconds  float64 `json:"seconds"`
	Duration string  `json:"duration,omitempty"`
}

// StringifyResponse is the result of stringifying a number of seconds
type StringifyResponse struct {
	Seconds float64 `json:"seconds"`
	Format  string  `json:"format"`
	Text    string  `json:"text"`
	English string  `json:"english,omitempty"`
}

// Unit describes one entry of the unit table
type Unit struct {
	Name      string            `json:"name"`
	Seconds   int64             `json:"seconds"`
	Patterns  []string          `json:"patterns"`
	Decompose bool              `json:"decompose"`
	Forms     map[string]string `json:"forms"`
}

// UnitsResponse lists the unit table, largest unit first
type UnitsResponse struct {
	Units []Unit `json:"units"`
}

// NewParse builds a ParseResponse, Duration stays empty when seconds overflow a time.Duration
func NewParse(input string, seconds float64) ParseResponse {
	resp := ParseResponse{Input: input, Seconds: seconds}
	if ns := seconds * float64(time.Second); math.Abs(ns) < math.MaxInt64 {
		resp.Duration = time.Duration(math.Round(ns)).String()
	}
	return resp
}

// NewUnits builds the response for the unit table
func NewUnits() UnitsResponse {
	var resp UnitsResponse
	for _, u := range units.All() {
		forms := map[string]string{}
		for f, s := range u.Forms() {
			forms[string(f)] = s
		}
		resp.Units = append(resp.Units, Unit{
			Name:      u.Name,
			Seconds:   u.Scale,
			Patterns:  u.Patterns,
			Decompose: u.Decompose,
			Forms:     forms,
		})
	}
	return resp
}
