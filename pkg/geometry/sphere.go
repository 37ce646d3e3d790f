package geometry

import (
	"math"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Shape is anything a ray can be intersected with
type Shape interface {
	Intersect(ray Ray) Intersections
}

// Sphere is the unit sphere centered at the origin. It carries no state, so
// all spheres compare equal. To place a sphere elsewhere, transform the ray
// by the inverse of the sphere's transform before intersecting.
type Sphere struct{}

// NewSphere creates a new unit sphere
func NewSphere() Sphere {
	return Sphere{}
}

// Intersect returns both intersections of ray with the sphere, smallest t first,
// or none if the ray misses. A tangent ray yields two equal t values.
func (s Sphere) Intersect(ray Ray) Intersections {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	// A zero direction never leaves its origin
	if a == 0 {
		return Intersections{}
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	return Intersections{
		NewIntersection((-b-sqrtD)/(2*a), s),
		NewIntersection((-b+sqrtD)/(2*a), s),
	}
}
