package skyframe

import "math"

// Separation returns the on-sky angle between the two positions in radians,
// in the range [0, π]. Positions expressed in different frames are compared
// by first converting b into the frame of a, so the result is symmetric only
// up to floating point rounding.
//
// The angle is computed with the Vincenty formula, which stays accurate for
// very small and for near antipodal separations where the spherical law of
// cosines loses precision.
func Separation(a, b Position) (float64, error) {
	if a.Frame() != b.Frame() {
		conv, err := Convert(a.Frame(), b)
		if err != nil {
			return 0, err
		}

		b = conv
	}

	lon1, lat1 := a.LonLat()
	lon2, lat2 := b.LonLat()

	sinD, cosD := math.Sincos(lon2 - lon1)
	sin1, cos1 := math.Sincos(lat1)
	sin2, cos2 := math.Sincos(lat2)

	num := math.Hypot(cos2*sinD, cos1*sin2-sin1*cos2*cosD)
	den := sin1*sin2 + cos1*cos2*cosD

	return math.Atan2(num, den), nil
}
