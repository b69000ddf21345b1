package gm

import "math"

// FromSpherical returns the unit vector pointing at the given longitude and
// latitude.
func FromSpherical(lon, lat Rad) Vec {
	sinLon, cosLon := math.Sincos(float64(lon))
	sinLat, cosLat := math.Sincos(float64(lat))

	return Vec{
		X: cosLat * cosLon,
		Y: cosLat * sinLon,
		Z: sinLat,
	}
}

// ToSpherical returns the longitude and latitude of the direction the vector
// points in. The vector does not need to have unit length, the hypot term
// normalizes implicitly.
func ToSpherical(v Vec) (lon, lat Rad) {
	lon = Rad(math.Atan2(v.Y, v.X))
	lat = Rad(math.Atan2(v.Z, math.Hypot(v.X, v.Y)))
	return lon, lat
}
