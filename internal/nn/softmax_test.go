package nn

import (
	"math"
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

func TestSoftmaxRows_Normalized(t *testing.T) {
	z := mustMatrix(t, []float64{
		1, 2, 3,
		-5, 0, 5,
		0.1, 0.1, 0.1,
		-30, 12.5, 7,
	}, 4, 3)

	SoftmaxRows(z, false)

	for i := 0; i < z.Rows(); i++ {
		sum := 0.0
		for _, p := range z.Row(i) {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d", i)
	}

	// Uniform scores give a uniform distribution.
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, z.Row(2), 1e-12)
}

func TestSoftmaxRows_KnownValues(t *testing.T) {
	z := mustMatrix(t, []float64{2, 1}, 1, 2)
	SoftmaxRows(z, false)

	e := math.Exp(1)
	assert.InDelta(t, e/(e+1), z.At(0, 0), 1e-12)
	assert.InDelta(t, 1/(e+1), z.At(0, 1), 1e-12)
}

func TestSoftmaxRows_StableMatchesPlain(t *testing.T) {
	data := []float64{0.3, -1.2, 2.5, 4, 4, 4.1}
	plain := mustMatrix(t, append([]float64(nil), data...), 2, 3)
	stable := mustMatrix(t, append([]float64(nil), data...), 2, 3)

	SoftmaxRows(plain, false)
	SoftmaxRows(stable, true)

	assert.InDeltaSlice(t, plain.Data(), stable.Data(), 1e-12)
}

func TestSoftmaxRows_LargeScores(t *testing.T) {
	// exp(1000) overflows without the max shift.
	plain := mustMatrix(t, []float64{1000, 999}, 1, 2)
	SoftmaxRows(plain, false)
	assert.True(t, math.IsNaN(plain.At(0, 0)), "unshifted softmax overflows")

	stable := mustMatrix(t, []float64{1000, 999}, 1, 2)
	SoftmaxRows(stable, true)
	e := math.Exp(1)
	assert.InDelta(t, e/(e+1), stable.At(0, 0), 1e-12)
	assert.InDelta(t, 1/(e+1), stable.At(0, 1), 1e-12)
}

func TestSoftmaxResidual(t *testing.T) {
	probs := mustMatrix(t, []float64{
		0.7, 0.2, 0.1,
		0.1, 0.3, 0.6,
	}, 2, 3)

	SoftmaxResidual(probs, tensor.Labels{0, 2})

	assert.InDeltaSlice(t, []float64{-0.3, 0.2, 0.1, 0.1, 0.3, -0.4}, probs.Data(), 1e-12)

	// Each residual row sums to zero.
	for i := 0; i < probs.Rows(); i++ {
		sum := 0.0
		for _, v := range probs.Row(i) {
			sum += v
		}
		assert.InDelta(t, 0.0, sum, 1e-12)
	}
}

func TestSoftmaxResidual_OneHotIsZero(t *testing.T) {
	probs := mustMatrix(t, []float64{0, 1, 0, 1, 0, 0}, 2, 3)
	SoftmaxResidual(probs, tensor.Labels{1, 0})
	for _, v := range probs.Data() {
		assert.Zero(t, v)
	}
}
