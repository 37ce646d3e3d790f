package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/matrix"
)

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    core.Tuple
	Direction core.Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction core.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) core.Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns a new ray with origin and direction multiplied by m.
// The direction is not renormalized, so t values stay comparable across spaces.
func (r Ray) Transform(m matrix.Matrix) (Ray, error) {
	origin, err := m.MultiplyTuple(r.Origin)
	if err != nil {
		return Ray{}, fmt.Errorf("transform ray origin: %w", err)
	}
	direction, err := m.MultiplyTuple(r.Direction)
	if err != nil {
		return Ray{}, fmt.Errorf("transform ray direction: %w", err)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}
