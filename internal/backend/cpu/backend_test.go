package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/softreg/internal/tensor"
)

func mustMatrix(t *testing.T, data []float64, rows, cols int) *tensor.Matrix {
	t.Helper()
	m, err := tensor.FromSlice(data, rows, cols)
	require.NoError(t, err)
	return m
}

// naiveMatMul is the reference C[i,j] = sum_k A[i,k] * B[k,j].
func naiveMatMul(a, b []float64, m, k, n int) []float64 {
	c := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

func TestMatMul_2x3_3x2(t *testing.T) {
	backend := New()

	a := mustMatrix(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustMatrix(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)
	c, err := tensor.NewMatrix(2, 2)
	require.NoError(t, err)

	backend.MatMul(c, a, b)

	// [1 2 3] . [7 9 11] = 58, [1 2 3] . [8 10 12] = 64
	// [4 5 6] . [7 9 11] = 139, [4 5 6] . [8 10 12] = 154
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestMatMul_OverwritesResult(t *testing.T) {
	backend := New()

	a := mustMatrix(t, []float64{1, 0, 0, 1}, 2, 2)
	b := mustMatrix(t, []float64{3, 4, 5, 6}, 2, 2)
	c := mustMatrix(t, []float64{100, 100, 100, 100}, 2, 2)

	backend.MatMul(c, a, b)
	assert.Equal(t, []float64{3, 4, 5, 6}, c.Data())
}

func TestMatMulTransA_MatchesReference(t *testing.T) {
	backend := New()

	// a is (K=3, M=2); aᵀ is (2, 3).
	aData := []float64{1, 2, 3, 4, 5, 6}
	bData := []float64{1, -1, 0, 2, 0.5, 0.5, 3, 1, -2, -1, 1, 0}
	a := mustMatrix(t, aData, 3, 2)
	b := mustMatrix(t, bData, 3, 4)
	c, err := tensor.NewMatrix(2, 4)
	require.NoError(t, err)

	backend.MatMulTransA(c, a, b)

	aT := []float64{1, 3, 5, 2, 4, 6}
	want := naiveMatMul(aT, bData, 2, 3, 4)
	assert.InDeltaSlice(t, want, c.Data(), 1e-12)
}

func TestMatMul_ShapeMismatchPanics(t *testing.T) {
	backend := New()

	a := mustMatrix(t, make([]float64, 6), 2, 3)
	b := mustMatrix(t, make([]float64, 4), 2, 2)
	c := mustMatrix(t, make([]float64, 4), 2, 2)

	assert.Panics(t, func() { backend.MatMul(c, a, b) })
	assert.Panics(t, func() { backend.MatMulTransA(c, b, a) })
}

func TestMatMul_LargeProductRepeatable(t *testing.T) {
	// Large enough for gonum to split the product across workers.
	backend := New()
	const m, k, n = 400, 300, 350

	aData := make([]float64, m*k)
	for i := range aData {
		aData[i] = float64(i%97)/97 - 0.5
	}
	bData := make([]float64, k*n)
	for i := range bData {
		bData[i] = float64(i%89)/89 - 0.5
	}
	a := mustMatrix(t, aData, m, k)
	b := mustMatrix(t, bData, k, n)

	first, err := tensor.NewMatrix(m, n)
	require.NoError(t, err)
	backend.MatMul(first, a, b)

	for i := 0; i < 3; i++ {
		again, err := tensor.NewMatrix(m, n)
		require.NoError(t, err)
		backend.MatMul(again, a, b)
		require.Equal(t, first.Data(), again.Data())
	}

	want := naiveMatMul(aData, bData, m, k, n)
	assert.InDeltaSlice(t, want, first.Data(), 1e-9)
}
