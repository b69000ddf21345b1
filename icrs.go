package skyframe

import (
	"fmt"

	"github.com/halcyon-labs/skyframe/gm"
)

type ICRS32 = icrs[float32]
type ICRS64 = icrs[float64]

// ICRS is a sky position in the International Celestial Reference System.
type ICRS = ICRS64

// ICRSOf returns the ICRS position with the given right ascension and
// declination in radians. The right ascension is wrapped into [0, 2π), the
// declination is stored as given.
func ICRSOf[S gm.Scalar](ra, dec S) icrs[S] {
	return icrs[S]{ra: wrap(ra), dec: dec}
}

type icrs[S gm.Scalar] struct {
	ra, dec S
}

// RA returns the right ascension in radians.
func (c icrs[S]) RA() S {
	return c.ra
}

// Dec returns the declination in radians.
func (c icrs[S]) Dec() S {
	return c.dec
}

func (c icrs[S]) Frame() Frame {
	return ICRSFrame
}

func (c icrs[S]) LonLat() (lon, lat float64) {
	return float64(c.ra), float64(c.dec)
}

func (c icrs[S]) single() bool {
	return isSingle[S]()
}

// Galactic expresses the position in the galactic frame.
func (c icrs[S]) Galactic() galactic[S] {
	lon, lat := apply[S](icrsToGal, c)
	return GalacticOf(lon, lat)
}

// FK5 expresses the position in FK5 referred to the given equinox.
func (c icrs[S]) FK5(equinox float64) fk5[S] {
	lon, lat := apply[S](precessFromJ2000(equinox).Mul(icrsToFK5J2000), c)
	return FK5Of(equinox, lon, lat)
}

// As32 returns the position with float32 angles.
func (c icrs[S]) As32() ICRS32 {
	return ICRSOf(float32(c.ra), float32(c.dec))
}

// As64 returns the position with float64 angles.
func (c icrs[S]) As64() ICRS64 {
	return ICRSOf(float64(c.ra), float64(c.dec))
}

func (c icrs[S]) String() string {
	return fmt.Sprintf("icrs(ra=%v, dec=%v)", c.ra, c.dec)
}
