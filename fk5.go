package skyframe

import (
	"fmt"

	"github.com/halcyon-labs/skyframe/gm"
)

type FK532 = fk5[float32]
type FK564 = fk5[float64]

// FK5 is a sky position referred to the mean equator and equinox of a given
// Julian year. The equinox is part of the frame identity: positions with
// different equinoxes never compare equal and must be converted explicitly,
// see At.
type FK5 = FK564

// FK5Of returns the FK5 position with the given right ascension and
// declination in radians, referred to the equinox given as a Julian year.
// The right ascension is wrapped into [0, 2π), the declination is stored as
// given.
func FK5Of[S gm.Scalar](equinox float64, ra, dec S) fk5[S] {
	return fk5[S]{equinox: equinox, ra: wrap(ra), dec: dec}
}

type fk5[S gm.Scalar] struct {
	ra, dec S
	equinox float64
}

// RA returns the right ascension in radians.
func (f fk5[S]) RA() S {
	return f.ra
}

// Dec returns the declination in radians.
func (f fk5[S]) Dec() S {
	return f.dec
}

// Equinox returns the equinox of the position as a Julian year.
func (f fk5[S]) Equinox() float64 {
	return f.equinox
}

func (f fk5[S]) Frame() Frame {
	return FK5Frame(f.equinox)
}

func (f fk5[S]) LonLat() (lon, lat float64) {
	return float64(f.ra), float64(f.dec)
}

func (f fk5[S]) single() bool {
	return isSingle[S]()
}

// ICRS expresses the position in the ICRS frame.
func (f fk5[S]) ICRS() icrs[S] {
	lon, lat := apply[S](fk5J2000ToICRS.Mul(precessFromJ2000(f.equinox).Transposed()), f)
	return ICRSOf(lon, lat)
}

// Galactic expresses the position in the galactic frame.
func (f fk5[S]) Galactic() galactic[S] {
	lon, lat := apply[S](fk5J2000ToGal.Mul(precessFromJ2000(f.equinox).Transposed()), f)
	return GalacticOf(lon, lat)
}

// At precesses the position to the given equinox. A position already
// referred to that equinox is returned unchanged.
func (f fk5[S]) At(equinox float64) fk5[S] {
	if equinox == f.equinox {
		return f
	}

	m := precessFromJ2000(equinox).Mul(precessFromJ2000(f.equinox).Transposed())
	lon, lat := apply[S](m, f)
	return FK5Of(equinox, lon, lat)
}

// As32 returns the position with float32 angles.
func (f fk5[S]) As32() FK532 {
	return FK5Of(f.equinox, float32(f.ra), float32(f.dec))
}

// As64 returns the position with float64 angles.
func (f fk5[S]) As64() FK564 {
	return FK5Of(f.equinox, float64(f.ra), float64(f.dec))
}

func (f fk5[S]) String() string {
	return fmt.Sprintf("fk5(J%v, ra=%v, dec=%v)", f.equinox, f.ra, f.dec)
}
