// Package skyframe converts astronomical sky positions between the ICRS,
// galactic and equinox-parameterized FK5 reference frames and computes
// angular separations between them.
//
// Positions are immutable value types holding two angles in radians. A
// conversion expresses a position as a unit vector, rotates it with a
// matrix derived from published astronomical constants and reads the
// resulting angles back. Separations use the Vincenty formula, which stays
// accurate for very small and near antipodal angles.
//
// Only precession is modelled for FK5; there is no nutation, aberration,
// proper motion or parallax handling.
package skyframe
