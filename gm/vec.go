package gm

import (
	"fmt"
	"math"
)

// Scalar is the set of floating point types a vector or position may store.
type Scalar interface {
	float32 | float64
}

type Vec32 = vec3[float32]
type Vec64 = vec3[float64]

// Vec is the vector type used by the matrix math.
type Vec = Vec64

func VecOf[S Scalar](x, y, z S) vec3[S] {
	return vec3[S]{X: x, Y: y, Z: z}
}

type vec3[S Scalar] struct {
	X, Y, Z S
}

func (v vec3[S]) Add(other vec3[S]) vec3[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v vec3[S]) Sub(other vec3[S]) vec3[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v vec3[S]) Mul(scalar S) vec3[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// Dot returns the dot product of the two vectors.
func (v vec3[S]) Dot(other vec3[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of the two vectors.
func (v vec3[S]) Cross(other vec3[S]) vec3[S] {
	return vec3[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v vec3[S]) Length() S {
	return S(math.Sqrt(float64(v.Dot(v))))
}

func (v vec3[S]) LengthSqr() S {
	return v.Dot(v)
}

func (v vec3[S]) Normalized() vec3[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

// As32 returns the vector with float32 components.
func (v vec3[S]) As32() Vec32 {
	return Vec32{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// As64 returns the vector with float64 components.
func (v vec3[S]) As64() Vec64 {
	return Vec64{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func (v vec3[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
