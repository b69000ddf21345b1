package gm

import "math"

// Mat describes a 3d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis, ZAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1},
		YAxis: Vec{Y: 1},
		ZAxis: Vec{Z: 1},
	}
}

// RotationX returns the right handed rotation matrix
// about the x axis by the given angle.
func RotationX(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: 1},
		YAxis: Vec{Y: cos, Z: -sin},
		ZAxis: Vec{Y: sin, Z: cos},
	}
}

// RotationY returns the right handed rotation matrix
// about the y axis by the given angle.
func RotationY(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: cos, Z: sin},
		YAxis: Vec{Y: 1},
		ZAxis: Vec{X: -sin, Z: cos},
	}
}

// RotationZ returns the right handed rotation matrix
// about the z axis by the given angle.
func RotationZ(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: cos, Y: -sin},
		YAxis: Vec{X: sin, Y: cos},
		ZAxis: Vec{Z: 1},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
		Z: m.ZAxis.Dot(vec),
	}
}

func (m Mat) Mul(n Mat) Mat {
	t := n.Transposed()

	return Mat{
		XAxis: Vec{X: m.XAxis.Dot(t.XAxis), Y: m.XAxis.Dot(t.YAxis), Z: m.XAxis.Dot(t.ZAxis)},
		YAxis: Vec{X: m.YAxis.Dot(t.XAxis), Y: m.YAxis.Dot(t.YAxis), Z: m.YAxis.Dot(t.ZAxis)},
		ZAxis: Vec{X: m.ZAxis.Dot(t.XAxis), Y: m.ZAxis.Dot(t.YAxis), Z: m.ZAxis.Dot(t.ZAxis)},
	}
}

// Transposed returns the transpose of the matrix. For a rotation matrix the
// transpose equals the inverse.
func (m Mat) Transposed() Mat {
	return Mat{
		XAxis: Vec{X: m.XAxis.X, Y: m.YAxis.X, Z: m.ZAxis.X},
		YAxis: Vec{X: m.XAxis.Y, Y: m.YAxis.Y, Z: m.ZAxis.Y},
		ZAxis: Vec{X: m.XAxis.Z, Y: m.YAxis.Z, Z: m.ZAxis.Z},
	}
}

// Det returns the determinant of the matrix.
func (m Mat) Det() float64 {
	return m.XAxis.Dot(m.YAxis.Cross(m.ZAxis))
}
