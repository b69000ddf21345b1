package skyframe

import (
	"fmt"

	"github.com/halcyon-labs/skyframe/internal/sexa"
)

// ParseICRS builds an ICRS position from sexagesimal text, with the right
// ascension given in hours and the declination in degrees.
func ParseICRS(ra, dec string) (ICRS, error) {
	raRad, err := sexa.ParseHourAngle(ra)
	if err != nil {
		return ICRS{}, fmt.Errorf("right ascension: %w", err)
	}

	decRad, err := sexa.ParseAngle(dec)
	if err != nil {
		return ICRS{}, fmt.Errorf("declination: %w", err)
	}

	return ICRSOf(raRad, decRad), nil
}

// ParseGalactic builds a galactic position from sexagesimal text, with both
// coordinates given in degrees.
func ParseGalactic(l, b string) (Galactic, error) {
	lRad, err := sexa.ParseAngle(l)
	if err != nil {
		return Galactic{}, fmt.Errorf("galactic longitude: %w", err)
	}

	bRad, err := sexa.ParseAngle(b)
	if err != nil {
		return Galactic{}, fmt.Errorf("galactic latitude: %w", err)
	}

	return GalacticOf(lRad, bRad), nil
}

// ParseFK5 builds an FK5 position referred to the given equinox from
// sexagesimal text, with the right ascension given in hours and the
// declination in degrees.
func ParseFK5(equinox float64, ra, dec string) (FK5, error) {
	raRad, err := sexa.ParseHourAngle(ra)
	if err != nil {
		return FK5{}, fmt.Errorf("right ascension: %w", err)
	}

	decRad, err := sexa.ParseAngle(dec)
	if err != nil {
		return FK5{}, fmt.Errorf("declination: %w", err)
	}

	return FK5Of(equinox, raRad, decRad), nil
}
