package skyframe

import "github.com/halcyon-labs/skyframe/gm"

// Precession angle polynomials from Capitaine et al. 2003 as adopted for
// IAU 2006, in arcseconds per power of t, with t in Julian centuries since
// J2000.
var (
	pzeta  = [6]float64{2.650545, 2306.083227, 0.2988499, 0.01801828, -0.000005971, -0.0000003173}
	pz     = [6]float64{-2.650545, 2306.077181, 1.0927348, 0.01826837, -0.000028596, -0.0000002904}
	ptheta = [6]float64{0, 2004.191903, -0.4294934, -0.04182264, -0.000007089, -0.0000001274}
)

// precessFromJ2000 returns the matrix that rotates mean FK5 J2000 vectors to
// the mean equator and equinox of the given Julian year. The matrix depends
// on the equinox and is computed per call.
func precessFromJ2000(equinox float64) gm.Mat {
	t := (equinox - 2000.0) / 100.0

	zeta := gm.ArcsecToRad(polyval(pzeta, t))
	z := gm.ArcsecToRad(polyval(pz, t))
	theta := gm.ArcsecToRad(polyval(ptheta, t))

	return gm.RotationZ(-z).Mul(gm.RotationY(theta)).Mul(gm.RotationZ(-zeta))
}

func polyval(c [6]float64, t float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*t + c[i]
	}

	return sum
}
