package skyframe

import "github.com/halcyon-labs/skyframe/gm"

// Frame bias between ICRS and the FK5 J2000 mean equator and equinox, from
// USNO Circular 179 section 3.5, in arcseconds.
const (
	biasEta0    = -19.9
	biasXi0     = 9.1
	biasDalpha0 = -22.9
)

// Orientation of the galactic frame relative to FK5 J2000: the north
// galactic pole position and the galactic longitude of the ascending node
// of the galactic plane, in degrees. The values carry more digits than the
// defining survey supports so that results agree with other libraries
// using the same convention.
const (
	galNgpRA  = 192.8594812065348
	galNgpDec = 27.12825118085622
	galLon0   = 122.9319185680026
)

// The fixed rotation matrices are built once before first use and are never
// written to afterwards.
var (
	icrsToFK5J2000 = gm.RotationX(gm.ArcsecToRad(-biasEta0)).
			Mul(gm.RotationY(gm.ArcsecToRad(biasXi0))).
			Mul(gm.RotationZ(gm.ArcsecToRad(biasDalpha0)))
	fk5J2000ToICRS = icrsToFK5J2000.Transposed()

	fk5J2000ToGal = gm.RotationZ(gm.DegToRad(180 - galLon0)).
			Mul(gm.RotationY(gm.DegToRad(90 - galNgpDec))).
			Mul(gm.RotationZ(gm.DegToRad(galNgpRA)))
	galToFK5J2000 = fk5J2000ToGal.Transposed()

	galToICRS = fk5J2000ToICRS.Mul(galToFK5J2000)
	icrsToGal = galToICRS.Transposed()
)
