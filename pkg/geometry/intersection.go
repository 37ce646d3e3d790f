package geometry

import (
	"slices"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Intersection is the ray parameter t at which a ray meets Object
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Equal reports whether both t values match within core.Epsilon and the objects are equal
func (i Intersection) Equal(other Intersection) bool {
	return core.ApproxEqual(i.T, other.T, core.Epsilon) && i.Object == other.Object
}

// Intersections is an ordered list of intersections, smallest t first
type Intersections []Intersection

// NewIntersections aggregates intersections sorted by t. Ties keep their argument order.
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	slices.SortStableFunc(result, func(a, b Intersection) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		}
		return 0
	})
	return result
}

// Hit returns the visible intersection: the one with the lowest non-negative t
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
