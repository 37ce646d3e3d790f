// Package transform builds the 4×4 affine matrices used to move points and
// vectors around a scene. Every builder starts from the identity matrix and
// overwrites specific cells.
//
// Transforms compose by matrix multiplication and apply right to left:
// for T = C·B·A, A is applied first. Chain and Builder accept steps in the
// order they should be applied.
package transform

import (
	"math"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/matrix"
)

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) matrix.Matrix {
	return matrix.Identity(4).With(
		matrix.Cell{Row: 0, Col: 3, Value: x},
		matrix.Cell{Row: 1, Col: 3, Value: y},
		matrix.Cell{Row: 2, Col: 3, Value: z},
	)
}

// Scaling scales each axis independently. A negative factor reflects across that axis.
func Scaling(x, y, z float64) matrix.Matrix {
	return matrix.Identity(4).With(
		matrix.Cell{Row: 0, Col: 0, Value: x},
		matrix.Cell{Row: 1, Col: 1, Value: y},
		matrix.Cell{Row: 2, Col: 2, Value: z},
	)
}

// RotationX rotates by angle radians around the x axis (right-handed)
func RotationX(angle float64) matrix.Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return matrix.Identity(4).With(
		matrix.Cell{Row: 1, Col: 1, Value: c},
		matrix.Cell{Row: 1, Col: 2, Value: -s},
		matrix.Cell{Row: 2, Col: 1, Value: s},
		matrix.Cell{Row: 2, Col: 2, Value: c},
	)
}

// RotationY rotates by angle radians around the y axis (right-handed)
func RotationY(angle float64) matrix.Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return matrix.Identity(4).With(
		matrix.Cell{Row: 0, Col: 0, Value: c},
		matrix.Cell{Row: 0, Col: 2, Value: s},
		matrix.Cell{Row: 2, Col: 0, Value: -s},
		matrix.Cell{Row: 2, Col: 2, Value: c},
	)
}

// RotationZ rotates by angle radians around the z axis (right-handed)
func RotationZ(angle float64) matrix.Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return matrix.Identity(4).With(
		matrix.Cell{Row: 0, Col: 0, Value: c},
		matrix.Cell{Row: 0, Col: 1, Value: -s},
		matrix.Cell{Row: 1, Col: 0, Value: s},
		matrix.Cell{Row: 1, Col: 1, Value: c},
	)
}

// Shearing moves each component in proportion to the other two.
// xy is the shear of x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) matrix.Matrix {
	return matrix.Identity(4).With(
		matrix.Cell{Row: 0, Col: 1, Value: xy},
		matrix.Cell{Row: 0, Col: 2, Value: xz},
		matrix.Cell{Row: 1, Col: 0, Value: yx},
		matrix.Cell{Row: 1, Col: 2, Value: yz},
		matrix.Cell{Row: 2, Col: 0, Value: zx},
		matrix.Cell{Row: 2, Col: 1, Value: zy},
	)
}

// Chain composes transforms so that the first argument is applied first.
// Chain(a, b, c) returns c·b·a. With no arguments it returns the identity.
func Chain(transforms ...matrix.Matrix) (matrix.Matrix, error) {
	result := matrix.Identity(4)
	for _, t := range transforms {
		next, err := t.Multiply(result)
		if err != nil {
			return matrix.Matrix{}, err
		}
		result = next
	}
	return result, nil
}

// Apply multiplies a 4×4 transform by a point or vector
func Apply(m matrix.Matrix, t core.Tuple) (core.Tuple, error) {
	return m.MultiplyTuple(t)
}
