package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/matrix"
)

const tolerance = 1e-9

func apply(t *testing.T, m matrix.Matrix, tuple core.Tuple) core.Tuple {
	t.Helper()
	result, err := Apply(m, tuple)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	return result
}

func inverse(t *testing.T, m matrix.Matrix) matrix.Matrix {
	t.Helper()
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	return inv
}

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)

	if got := apply(t, transform, core.Point(-3, 4, 5)); !got.Equal(core.Point(2, 1, 7)) {
		t.Errorf("Expected point(2, 1, 7), got %v", got)
	}

	inv := inverse(t, transform)
	if got := apply(t, inv, core.Point(-3, 4, 5)); !got.Equal(core.Point(-8, 7, 3)) {
		t.Errorf("Expected point(-8, 7, 3), got %v", got)
	}

	v := core.Vector(-3, 4, 5)
	if got := apply(t, transform, v); !got.Equal(v) {
		t.Errorf("Expected translation to leave %v unchanged, got %v", v, got)
	}
}

func TestTranslation_PointsMoveVectorsDoNot(t *testing.T) {
	offsets := []core.Tuple{core.Vector(1, 2, 3), core.Vector(-7.5, 0, 0.25), core.Vector(0, 0, 0)}
	coords := [][3]float64{{0, 0, 0}, {1, -1, 2}, {-3.5, 4, 10}, {100, 0.125, -8}}

	for _, off := range offsets {
		m := Translation(off.X, off.Y, off.Z)
		for _, c := range coords {
			v := core.Vector(c[0], c[1], c[2])
			if got := apply(t, m, v); !got.Equal(v) {
				t.Errorf("Expected translation by %v to leave %v unchanged, got %v", off, v, got)
			}
			p := core.Point(c[0], c[1], c[2])
			if got, expected := apply(t, m, p), p.Add(off); !got.Equal(expected) {
				t.Errorf("Expected %v, got %v", expected, got)
			}
		}
	}
}

func TestScaling(t *testing.T) {
	tests := []struct {
		name      string
		transform matrix.Matrix
		input     core.Tuple
		expected  core.Tuple
	}{
		{"scale point", Scaling(2, 3, 4), core.Point(-4, 6, 8), core.Point(-8, 18, 32)},
		{"scale vector", Scaling(2, 3, 4), core.Vector(-4, 6, 8), core.Vector(-8, 18, 32)},
		{"reflection", Scaling(-1, 1, 1), core.Point(2, 3, 4), core.Point(-2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(t, tt.transform, tt.input); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	inv := inverse(t, Scaling(2, 3, 4))
	if got := apply(t, inv, core.Vector(-4, 6, 8)); !got.ApproxEqual(core.Vector(-2, 2, 2), tolerance) {
		t.Errorf("Expected vector(-2, 2, 2), got %v", got)
	}
}

func TestRotation(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform matrix.Matrix
		input     core.Tuple
		expected  core.Tuple
	}{
		{"x half quarter", RotationX(math.Pi / 4), core.Point(0, 1, 0), core.Point(0, half, half)},
		{"x full quarter", RotationX(math.Pi / 2), core.Point(0, 1, 0), core.Point(0, 0, 1)},
		{"y half quarter", RotationY(math.Pi / 4), core.Point(0, 0, 1), core.Point(half, 0, half)},
		{"y full quarter", RotationY(math.Pi / 2), core.Point(0, 0, 1), core.Point(1, 0, 0)},
		{"z half quarter", RotationZ(math.Pi / 4), core.Point(0, 1, 0), core.Point(-half, half, 0)},
		{"z full quarter", RotationZ(math.Pi / 2), core.Point(0, 1, 0), core.Point(-1, 0, 0)},
		{"x inverse half quarter", inverse(t, RotationX(math.Pi/4)), core.Point(0, 1, 0), core.Point(0, half, -half)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(t, tt.transform, tt.input); !got.ApproxEqual(tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRotationY_QuarterTurnWithinEpsilon(t *testing.T) {
	got := apply(t, RotationY(math.Pi/2), core.Point(0, 0, 1))
	if !got.Equal(core.Point(1, 0, 0)) {
		t.Errorf("Expected point(1, 0, 0) within Epsilon, got %v", got)
	}
}

func TestShearing(t *testing.T) {
	tests := []struct {
		name      string
		transform matrix.Matrix
		expected  core.Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), core.Point(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), core.Point(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), core.Point(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), core.Point(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), core.Point(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), core.Point(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(t, tt.transform, core.Point(2, 3, 4)); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransformSequence(t *testing.T) {
	p := core.Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	p2 := apply(t, a, p)
	if !p2.ApproxEqual(core.Point(1, -1, 0), tolerance) {
		t.Errorf("Expected point(1, -1, 0), got %v", p2)
	}
	p3 := apply(t, b, p2)
	if !p3.ApproxEqual(core.Point(5, -5, 0), tolerance) {
		t.Errorf("Expected point(5, -5, 0), got %v", p3)
	}
	p4 := apply(t, c, p3)
	if !p4.Equal(core.Point(15, 0, 7)) {
		t.Errorf("Expected point(15, 0, 7), got %v", p4)
	}
}

func TestTransformSequence_Chained(t *testing.T) {
	p := core.Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	cb, err := c.Multiply(b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cba, err := cb.Multiply(a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := apply(t, cba, p); !got.Equal(core.Point(15, 0, 7)) {
		t.Errorf("Expected point(15, 0, 7) from C*B*A, got %v", got)
	}

	chained, err := Chain(a, b, c)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !chained.ApproxEqual(cba, tolerance) {
		t.Errorf("Expected Chain(a, b, c) = %v, got %v", cba, chained)
	}
	if got := apply(t, chained, p); !got.Equal(core.Point(15, 0, 7)) {
		t.Errorf("Expected point(15, 0, 7) from Chain, got %v", got)
	}

	// Reversing the order gives a different transform
	reversed, _ := Chain(c, b, a)
	if got := apply(t, reversed, p); got.ApproxEqual(core.Point(15, 0, 7), tolerance) {
		t.Errorf("Expected reversed chain to differ, got %v", got)
	}
}

func TestChain_Empty(t *testing.T) {
	m, err := Chain()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !m.Equal(matrix.Identity(4)) {
		t.Errorf("Expected identity, got %v", m)
	}
}

func TestChain_DimensionMismatch(t *testing.T) {
	if _, err := Chain(Translation(1, 2, 3), matrix.Identity(3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := Apply(matrix.Identity(3), core.Point(1, 2, 3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch from Apply, got %v", err)
	}
}

func TestBuilder(t *testing.T) {
	p := core.Point(1, 0, 1)

	m := New().RotateX(math.Pi / 2).Scale(5, 5, 5).Translate(10, 5, 7).Matrix()
	if got := apply(t, m, p); !got.Equal(core.Point(15, 0, 7)) {
		t.Errorf("Expected point(15, 0, 7), got %v", got)
	}

	var zero Builder
	if !zero.Matrix().Equal(matrix.Identity(4)) {
		t.Errorf("Expected zero Builder to be identity, got %v", zero.Matrix())
	}
	if got := apply(t, zero.Translate(1, 2, 3).Matrix(), core.Point(0, 0, 0)); !got.Equal(core.Point(1, 2, 3)) {
		t.Errorf("Expected point(1, 2, 3), got %v", got)
	}

	// Each call returns a new builder
	base := New().Translate(1, 0, 0)
	_ = base.Scale(2, 2, 2)
	if got := apply(t, base.Matrix(), core.Point(0, 0, 0)); !got.Equal(core.Point(1, 0, 0)) {
		t.Errorf("Expected builder to be unchanged, got %v", got)
	}

	sheared := New().Shear(1, 0, 0, 0, 0, 0).RotateY(math.Pi / 2).RotateZ(math.Pi / 2).Matrix()
	expected, _ := Chain(Shearing(1, 0, 0, 0, 0, 0), RotationY(math.Pi/2), RotationZ(math.Pi/2))
	if !sheared.Equal(expected) {
		t.Errorf("Expected builder to match Chain, got %v want %v", sheared, expected)
	}
}

func TestTransforms_Invertible(t *testing.T) {
	transforms := []struct {
		name string
		m    matrix.Matrix
	}{
		{"translation", Translation(1, -2, 3)},
		{"scaling", Scaling(2, 0.5, -4)},
		{"rotation x", RotationX(0.3)},
		{"rotation y", RotationY(1.1)},
		{"rotation z", RotationZ(-2.4)},
		{"shearing", Shearing(1, 0.5, 0, 2, 0, 0.25)},
		{"composite", New().RotateY(0.7).Shear(0, 1, 0, 0, 0, 0).Scale(1, 2, 3).Translate(-4, 5, 6).Matrix()},
	}

	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			inv := inverse(t, tt.m)
			product, err := tt.m.Multiply(inv)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !product.ApproxEqual(matrix.Identity(4), tolerance) {
				t.Errorf("Expected identity, got %v", product)
			}
			if back := inverse(t, inv); !back.ApproxEqual(tt.m, tolerance) {
				t.Errorf("Expected inverse(inverse(M)) = %v, got %v", tt.m, back)
			}
		})
	}

	if _, err := Scaling(0, 1, 1).Inverse(); !errors.Is(err, matrix.ErrNotInvertible) {
		t.Errorf("Expected degenerate scaling to be ErrNotInvertible, got %v", err)
	}
}
