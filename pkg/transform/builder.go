package transform

import "github.com/df07/go-raytracer-kernel/pkg/matrix"

// Builder composes transforms fluently in the order they are applied:
//
//	m := transform.New().RotateX(math.Pi / 2).Scale(5, 5, 5).Translate(10, 5, 7).Matrix()
//
// is the same as Translation(10, 5, 7)·Scaling(5, 5, 5)·RotationX(π/2).
// A Builder is a value and each call returns a new one. The zero value is the identity.
type Builder struct {
	m matrix.Matrix
}

// New starts a builder at the identity transform
func New() Builder {
	return Builder{m: matrix.Identity(4)}
}

// then left-multiplies the next step. Both operands are 4×4 so the product always exists.
func (b Builder) then(next matrix.Matrix) Builder {
	m, err := next.Multiply(b.Matrix())
	if err != nil {
		panic(err)
	}
	return Builder{m: m}
}

// Translate appends a translation
func (b Builder) Translate(x, y, z float64) Builder {
	return b.then(Translation(x, y, z))
}

// Scale appends a scaling
func (b Builder) Scale(x, y, z float64) Builder {
	return b.then(Scaling(x, y, z))
}

// RotateX appends a rotation around the x axis
func (b Builder) RotateX(angle float64) Builder {
	return b.then(RotationX(angle))
}

// RotateY appends a rotation around the y axis
func (b Builder) RotateY(angle float64) Builder {
	return b.then(RotationY(angle))
}

// RotateZ appends a rotation around the z axis
func (b Builder) RotateZ(angle float64) Builder {
	return b.then(RotationZ(angle))
}

// Shear appends a shearing
func (b Builder) Shear(xy, xz, yx, yz, zx, zy float64) Builder {
	return b.then(Shearing(xy, xz, yx, yz, zx, zy))
}

// Matrix returns the composed transform
func (b Builder) Matrix() matrix.Matrix {
	if b.m.Width() == 0 {
		return matrix.Identity(4)
	}
	return b.m
}
