package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major float64 matrix that carries its own shape.
//
// A Matrix either owns its buffer (NewMatrix, Clone) or borrows a caller
// buffer (FromSlice, RowRange). Borrowed matrices write through to the
// caller's memory.
type Matrix struct {
	shape  Shape
	stride []int
	data   []float64
}

// NewMatrix allocates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Matrix{
		shape:  shape,
		stride: shape.ComputeStrides(),
		data:   make([]float64, rows*cols),
	}, nil
}

// FromSlice wraps data as a rows×cols matrix without copying.
//
// Returns ErrInvalidShape if a dimension is not positive or len(data) is not
// rows*cols.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: buffer has %d elements, shape %v needs %d",
			ErrInvalidShape, len(data), shape, shape.NumElements())
	}
	return &Matrix{
		shape:  shape,
		stride: shape.ComputeStrides(),
		data:   data,
	}, nil
}

// Rows returns the number of rows, or 0 for a zero Matrix.
func (m *Matrix) Rows() int {
	if len(m.shape) != 2 {
		return 0
	}
	return m.shape[0]
}

// Cols returns the number of columns, or 0 for a zero Matrix.
func (m *Matrix) Cols() int {
	if len(m.shape) != 2 {
		return 0
	}
	return m.shape[1]
}

// Shape returns a copy of the matrix shape.
func (m *Matrix) Shape() Shape {
	return m.shape.Clone()
}

// Data returns the underlying row-major buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Row returns row i as a slice sharing the matrix buffer.
func (m *Matrix) Row(i int) []float64 {
	start := i * m.stride[0]
	return m.data[start : start+m.shape[1]]
}

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.stride[0]+j]
}

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.stride[0]+j] = v
}

// Clone returns a deep copy that owns its buffer.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{
		shape:  m.shape.Clone(),
		stride: append([]int(nil), m.stride...),
		data:   data,
	}
}

// RowRange returns rows [start, end) as a view sharing the matrix buffer.
// Panics if the range is empty or out of bounds.
func (m *Matrix) RowRange(start, end int) *Matrix {
	if start < 0 || end > m.shape[0] || start >= end {
		panic(fmt.Sprintf("tensor: row range [%d,%d) out of bounds for %v", start, end, m.shape))
	}
	cols := m.shape[1]
	shape := Shape{end - start, cols}
	return &Matrix{
		shape:  shape,
		stride: shape.ComputeStrides(),
		data:   m.data[start*cols : end*cols : end*cols],
	}
}

// Dense returns a gonum view sharing the matrix buffer.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.shape[0], m.shape[1], m.data)
}

// Labels is a vector of class indices, one per dataset row.
type Labels []int32

// NumClasses returns max(labels)+1, the smallest class count that covers
// every label. Returns 0 for an empty vector or when all labels are negative.
func (l Labels) NumClasses() int {
	k := 0
	for _, label := range l {
		if int(label)+1 > k {
			k = int(label) + 1
		}
	}
	return k
}

// FirstOutOfRange returns the index of the first label outside [0, k), or -1.
func (l Labels) FirstOutOfRange(k int) int {
	for i, label := range l {
		if label < 0 || int(label) >= k {
			return i
		}
	}
	return -1
}
