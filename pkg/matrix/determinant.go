package matrix

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Determinant returns the determinant of a square matrix of any size,
// computed by cofactor expansion along the first row.
func (m Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("determinant of %dx%d: %w", m.width, m.height, ErrNotSquare)
	}
	return m.determinant(), nil
}

// determinant assumes a square, non-empty matrix.
// Cost is O(n!); every transform in this kernel is 4×4.
func (m Matrix) determinant() float64 {
	switch m.width {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	det := 0.0
	for col := 0; col < m.height; col++ {
		det += m.data[col] * m.cofactor(0, col)
	}
	return det
}

// Submatrix returns a copy with the given row and column removed.
// It panics if row or col is out of range.
func (m Matrix) Submatrix(row, col int) Matrix {
	m.index(row, col)
	result := Zeroed(m.width-1, m.height-1)
	i := 0
	for r := 0; r < m.width; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.height; c++ {
			if c == col {
				continue
			}
			result.data[i] = m.data[r*m.height+c]
			i++
		}
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) (float64, error) {
	if !m.IsSquare() || m.width < 2 {
		return 0, fmt.Errorf("minor of %dx%d: %w", m.width, m.height, ErrNotSquare)
	}
	return m.minor(row, col), nil
}

func (m Matrix) minor(row, col int) float64 {
	return m.Submatrix(row, col).determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) (float64, error) {
	if !m.IsSquare() || m.width < 2 {
		return 0, fmt.Errorf("cofactor of %dx%d: %w", m.width, m.height, ErrNotSquare)
	}
	return m.cofactor(row, col), nil
}

func (m Matrix) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Adjugate returns the transpose of the cofactor matrix
func (m Matrix) Adjugate() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, fmt.Errorf("adjugate of %dx%d: %w", m.width, m.height, ErrNotSquare)
	}
	return m.adjugate(), nil
}

func (m Matrix) adjugate() Matrix {
	n := m.width
	result := Zeroed(n, n)
	if n == 1 {
		result.data[0] = 1
		return result
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			// transposed on write
			result.data[col*n+row] = m.cofactor(row, col)
		}
	}
	return result
}

// IsInvertible reports whether Inverse would succeed
func (m Matrix) IsInvertible() bool {
	return m.IsSquare() && math.Abs(m.determinant()) > core.Epsilon
}

// Inverse returns adjugate(m) / determinant(m). It fails with ErrNotInvertible when
// the determinant is within core.Epsilon of zero.
func (m Matrix) Inverse() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, fmt.Errorf("inverse of %dx%d: %w", m.width, m.height, ErrNotSquare)
	}
	det := m.determinant()
	if math.Abs(det) <= core.Epsilon {
		return Matrix{}, fmt.Errorf("inverse of %v (determinant %g): %w", m, det, ErrNotInvertible)
	}
	result := m.adjugate()
	for i := range result.data {
		result.data[i] /= det
	}
	return result, nil
}
