package skyframe

import (
	"fmt"

	"github.com/halcyon-labs/skyframe/gm"
)

type Galactic32 = galactic[float32]
type Galactic64 = galactic[float64]

// Galactic is a sky position in the galactic frame, defined by the plane of
// the Milky Way and the direction to the galactic center.
type Galactic = Galactic64

// GalacticOf returns the galactic position with the given longitude and
// latitude in radians. The longitude is wrapped into [0, 2π), the latitude
// is stored as given.
func GalacticOf[S gm.Scalar](l, b S) galactic[S] {
	return galactic[S]{l: wrap(l), b: b}
}

type galactic[S gm.Scalar] struct {
	l, b S
}

// L returns the galactic longitude in radians.
func (g galactic[S]) L() S {
	return g.l
}

// B returns the galactic latitude in radians.
func (g galactic[S]) B() S {
	return g.b
}

func (g galactic[S]) Frame() Frame {
	return GalacticFrame
}

func (g galactic[S]) LonLat() (lon, lat float64) {
	return float64(g.l), float64(g.b)
}

func (g galactic[S]) single() bool {
	return isSingle[S]()
}

// ICRS expresses the position in the ICRS frame.
func (g galactic[S]) ICRS() icrs[S] {
	lon, lat := apply[S](galToICRS, g)
	return ICRSOf(lon, lat)
}

// FK5 expresses the position in FK5 referred to the given equinox.
func (g galactic[S]) FK5(equinox float64) fk5[S] {
	lon, lat := apply[S](precessFromJ2000(equinox).Mul(galToFK5J2000), g)
	return FK5Of(equinox, lon, lat)
}

// As32 returns the position with float32 angles.
func (g galactic[S]) As32() Galactic32 {
	return GalacticOf(float32(g.l), float32(g.b))
}

// As64 returns the position with float64 angles.
func (g galactic[S]) As64() Galactic64 {
	return GalacticOf(float64(g.l), float64(g.b))
}

func (g galactic[S]) String() string {
	return fmt.Sprintf("galactic(l=%v, b=%v)", g.l, g.b)
}
