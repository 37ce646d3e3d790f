package core

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used by Equal throughout the kernel (float64 machine epsilon)
const Epsilon = 2.220446049250313e-16

// ErrZeroMagnitude is returned when normalizing a tuple whose magnitude is zero
var ErrZeroMagnitude = errors.New("core: cannot normalize a zero-magnitude tuple")

// ApproxEqual reports whether a and b differ by at most tolerance
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Tuple is a homogeneous 4-component coordinate. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from all four components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with w = 1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with w = 0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether w is exactly 1
func (t Tuple) IsPoint() bool {
	return t.W == 1.0
}

// IsVector reports whether w is exactly 0
func (t Tuple) IsVector() bool {
	return t.W == 0.0
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple with every component divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length tuple in the same direction
func (t Tuple) Normalize() (Tuple, error) {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}, fmt.Errorf("normalize %v: %w", t, ErrZeroMagnitude)
	}
	return t.Divide(magnitude), nil
}

// Dot returns the dot product over all four components.
// Only meaningful for vectors; a point's w contributes to the sum.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3D cross product. W is ignored and the result is always a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Equal reports whether every component matches within Epsilon
func (t Tuple) Equal(other Tuple) bool {
	return t.ApproxEqual(other, Epsilon)
}

// ApproxEqual reports whether every component matches within tolerance
func (t Tuple) ApproxEqual(other Tuple, tolerance float64) bool {
	return ApproxEqual(t.X, other.X, tolerance) &&
		ApproxEqual(t.Y, other.Y, tolerance) &&
		ApproxEqual(t.Z, other.Z, tolerance) &&
		ApproxEqual(t.W, other.W, tolerance)
}

func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
