// Package sexa parses sexagesimal angle strings into radians.
//
// Accepted syntax is deliberately loose: unit markers ("12h34m56.7s",
// "-5d30m"), colons ("12:34:56.7") and plain whitespace ("12 34 56.7") all
// separate fields. Trailing fields may be left out and only the last field
// given may carry a fraction.
package sexa

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// ErrSyntax is returned for text that does not parse as a sexagesimal angle.
var ErrSyntax = errors.New("invalid sexagesimal coordinate")

var (
	hourMarkers = strings.NewReplacer("h", " ", "m", " ", "s", " ", ":", " ")
	degMarkers  = strings.NewReplacer(
		"d", " ", "m", " ", "s", " ", ":", " ",
		"°", " ", "′", " ", "″", " ", "'", " ", `"`, " ",
	)
)

// ParseHourAngle parses an hour angle such as "12h34m56.7s" and returns it
// in radians.
func ParseHourAngle(s string) (float64, error) {
	neg, h, m, sec, err := split(s, hourMarkers)
	if err != nil {
		return 0, err
	}

	rad := unit.NewRA(h, m, sec).Rad()
	if neg {
		rad = -rad
	}

	return rad, nil
}

// ParseAngle parses an angle in degrees such as "-5d30m00s" and returns it
// in radians.
func ParseAngle(s string) (float64, error) {
	neg, d, m, sec, err := split(s, degMarkers)
	if err != nil {
		return 0, err
	}

	sign := byte(' ')
	if neg {
		sign = '-'
	}

	return unit.NewAngle(sign, d, m, sec).Rad(), nil
}

// split tokenizes the string into a sign and up to three numeric fields and
// pushes any fraction of a truncated leading field down into the seconds.
func split(s string, markers *strings.Replacer) (neg bool, major, minor int, sec float64, err error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if t == "" {
		return false, 0, 0, 0, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	switch t[0] {
	case '-':
		neg = true
		t = t[1:]
	case '+':
		t = t[1:]
	}

	fields := strings.Fields(markers.Replace(t))
	if len(fields) == 0 || len(fields) > 3 {
		return false, 0, 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var f [3]float64
	for i, field := range fields {
		v, parseErr := strconv.ParseFloat(field, 64)
		if parseErr != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false, 0, 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}

		if v != math.Trunc(v) && i != len(fields)-1 {
			return false, 0, 0, 0, fmt.Errorf("%w: fraction before last field in %q", ErrSyntax, s)
		}

		f[i] = v
	}

	for i := 1; i < len(fields); i++ {
		if f[i] >= 60 {
			return false, 0, 0, 0, fmt.Errorf("%w: field out of range in %q", ErrSyntax, s)
		}
	}

	switch len(fields) {
	case 1:
		f[2] = (f[0] - math.Trunc(f[0])) * 3600
		f[0] = math.Trunc(f[0])
	case 2:
		f[2] = (f[1] - math.Trunc(f[1])) * 60
		f[1] = math.Trunc(f[1])
	}

	return neg, int(f[0]), int(f[1]), f[2], nil
}
