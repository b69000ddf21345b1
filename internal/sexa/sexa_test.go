package sexa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHourAngle(t *testing.T) {
	cases := map[string]float64{
		"12h":        math.Pi,
		"06h00m00s":  math.Pi / 2,
		"6:30":       6.5 * math.Pi / 12,
		"0h00m01s":   math.Pi / (12 * 3600),
		"-12h":       -math.Pi,
		" 12h34m56s": (12 + 34/60.0 + 56/3600.0) * math.Pi / 12,
	}

	for input, expected := range cases {
		got, err := ParseHourAngle(input)
		require.NoError(t, err, "input %q", input)
		require.InDelta(t, expected, got, 1e-12, "input %q", input)
	}
}

func TestParseAngle(t *testing.T) {
	cases := map[string]float64{
		"90d":          math.Pi / 2,
		"-45:30:00":    -45.5 * math.Pi / 180,
		"+27d07m41.7s": (27 + 7/60.0 + 41.7/3600.0) * math.Pi / 180,
		"180°":         math.Pi,
	}

	for input, expected := range cases {
		got, err := ParseAngle(input)
		require.NoError(t, err, "input %q", input)
		require.InDelta(t, expected, got, 1e-12, "input %q", input)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{"", "x", "1 2 3 4", "10h70m", "1.5h30m", "nan"} {
		_, err := ParseHourAngle(input)
		require.ErrorIs(t, err, ErrSyntax, "input %q", input)
	}
}
