package gm

import (
	"math"
	"math/rand"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomLat returns a random latitude such that directions built from it
// together with RandomAngle are uniformly distributed on the unit sphere.
func RandomLat() Rad {
	return Rad(math.Asin(RandomIn(-1.0, 1.0)))
}
