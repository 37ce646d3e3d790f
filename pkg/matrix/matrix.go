// Package matrix implements a dense, immutable matrix of float64 values with
// general N×N determinant and inverse by cofactor expansion.
//
// A matrix is described by its width (number of rows) and height (number of
// columns). Entries are stored flat with index = row*height + col.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare is returned by operations defined only for square matrices
	ErrNotSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrNotInvertible is returned by Inverse when the determinant is within Epsilon of zero
	ErrNotInvertible = errors.New("matrix: not invertible")
)

// Matrix is a width × height grid of float64 values. The zero value is an empty
// matrix; use New, Zeroed, Identity or FromRows to construct one.
type Matrix struct {
	width  int
	height int
	data   []float64
}

// Cell addresses a single entry and the value to store there
type Cell struct {
	Row, Col int
	Value    float64
}

// New creates a matrix from row-major data. The data is copied.
func New(width, height int, data []float64) (Matrix, error) {
	if width < 1 || height < 1 {
		return Matrix{}, fmt.Errorf("new %dx%d: %w", width, height, ErrDimensionMismatch)
	}
	if len(data) != width*height {
		return Matrix{}, fmt.Errorf("new %dx%d with %d values: %w", width, height, len(data), ErrDimensionMismatch)
	}
	m := Zeroed(width, height)
	copy(m.data, data)
	return m, nil
}

// FromRows creates a matrix from a slice of equally sized rows
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("from rows: empty matrix: %w", ErrDimensionMismatch)
	}
	width, height := len(rows), len(rows[0])
	data := make([]float64, 0, width*height)
	for i, row := range rows {
		if len(row) != height {
			return Matrix{}, fmt.Errorf("from rows: row %d has %d values, want %d: %w", i, len(row), height, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}
	return Matrix{width: width, height: height, data: data}, nil
}

// Zeroed creates a width × height matrix filled with zeros. It panics on negative sizes.
func Zeroed(width, height int) Matrix {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("matrix: invalid size %dx%d", width, height))
	}
	return Matrix{width: width, height: height, data: make([]float64, width*height)}
}

// Identity creates an n×n matrix with ones on the diagonal
func Identity(n int) Matrix {
	m := Zeroed(n, n)
	for i := 0; i < n; i++ {
		m.data[m.index(i, i)] = 1
	}
	return m
}

// Width returns the number of rows
func (m Matrix) Width() int { return m.width }

// Height returns the number of columns
func (m Matrix) Height() int { return m.height }

// IsSquare reports whether the matrix has as many rows as columns
func (m Matrix) IsSquare() bool { return m.width == m.height && m.width > 0 }

func (m Matrix) index(row, col int) int {
	if row < 0 || row >= m.width || col < 0 || col >= m.height {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix", row, col, m.width, m.height))
	}
	return row*m.height + col
}

// At returns the entry at (row, col). It panics if the index is out of range.
func (m Matrix) At(row, col int) float64 {
	return m.data[m.index(row, col)]
}

// With returns a copy of the matrix with the given cells overwritten
func (m Matrix) With(cells ...Cell) Matrix {
	result := m.clone()
	for _, c := range cells {
		result.data[result.index(c.Row, c.Col)] = c.Value
	}
	return result
}

func (m Matrix) clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Matrix{width: m.width, height: m.height, data: data}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	result := Zeroed(m.height, m.width)
	for row := 0; row < m.width; row++ {
		for col := 0; col < m.height; col++ {
			result.data[result.index(col, row)] = m.data[m.index(row, col)]
		}
	}
	return result
}

// Add returns the element-wise sum of two matrices of identical shape
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.sameShape(other) {
		return Matrix{}, fmt.Errorf("add %dx%d and %dx%d: %w", m.width, m.height, other.width, other.height, ErrDimensionMismatch)
	}
	result := m.clone()
	for i, v := range other.data {
		result.data[i] += v
	}
	return result, nil
}

// Subtract returns the element-wise difference of two matrices of identical shape
func (m Matrix) Subtract(other Matrix) (Matrix, error) {
	if !m.sameShape(other) {
		return Matrix{}, fmt.Errorf("subtract %dx%d and %dx%d: %w", m.width, m.height, other.width, other.height, ErrDimensionMismatch)
	}
	result := m.clone()
	for i, v := range other.data {
		result.data[i] -= v
	}
	return result, nil
}

// Scale returns the matrix with every entry multiplied by scalar
func (m Matrix) Scale(scalar float64) Matrix {
	result := m.clone()
	for i := range result.data {
		result.data[i] *= scalar
	}
	return result
}

// Multiply returns the matrix product m·other. It requires m.Height() == other.Width().
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if m.height != other.width || len(m.data) == 0 || len(other.data) == 0 {
		return Matrix{}, fmt.Errorf("multiply %dx%d by %dx%d: %w", m.width, m.height, other.width, other.height, ErrDimensionMismatch)
	}
	return m.multiply(other), nil
}

// multiply assumes m.height == other.width
func (m Matrix) multiply(other Matrix) Matrix {
	result := Zeroed(m.width, other.height)
	for i := 0; i < m.width; i++ {
		for j := 0; j < other.height; j++ {
			sum := 0.0
			for k := 0; k < m.height; k++ {
				sum += m.data[i*m.height+k] * other.data[k*other.height+j]
			}
			result.data[i*result.height+j] = sum
		}
	}
	return result
}

// MultiplyTuple treats t as a 4×1 column and returns m·t. It requires a 4×4 matrix.
func (m Matrix) MultiplyTuple(t core.Tuple) (core.Tuple, error) {
	if m.width != 4 || m.height != 4 {
		return core.Tuple{}, fmt.Errorf("multiply %dx%d by tuple: %w", m.width, m.height, ErrDimensionMismatch)
	}
	column := Matrix{width: 4, height: 1, data: []float64{t.X, t.Y, t.Z, t.W}}
	r := m.multiply(column)
	return core.NewTuple(r.data[0], r.data[1], r.data[2], r.data[3]), nil
}

func (m Matrix) sameShape(other Matrix) bool {
	return m.width == other.width && m.height == other.height
}

// Equal reports whether both matrices have the same shape and every entry matches within core.Epsilon
func (m Matrix) Equal(other Matrix) bool {
	return m.ApproxEqual(other, core.Epsilon)
}

// ApproxEqual reports whether both matrices have the same shape and every entry matches within tolerance
func (m Matrix) ApproxEqual(other Matrix, tolerance float64) bool {
	if !m.sameShape(other) {
		return false
	}
	for i, v := range m.data {
		if !core.ApproxEqual(v, other.data[i], tolerance) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for row := 0; row < m.width; row++ {
		if row > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		for col := 0; col < m.height; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%g", m.data[row*m.height+col])
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
