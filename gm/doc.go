// Package gm (stands for geometry math) provides the 3d geometry primitives
// behind the frame conversions.
//
// It includes a simple 3d vector type called Vec, a row major rotation matrix
// type Mat and conversions between unit vectors and spherical angles.
//
// There is also a type named Rad to represent angle values in radian.
package gm
