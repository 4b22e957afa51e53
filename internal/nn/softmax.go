// Package nn implements the softmax classifier head: row-wise softmax, the
// cross-entropy residual and evaluation helpers.
package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/softreg/internal/tensor"
)

// SoftmaxRows replaces every row of z with its softmax, in place.
//
// Formula:
//
//	Softmax(z)[j] = exp(z[j]) / Σ exp(z[i])
//
// With stable=false the scores are exponentiated as-is, so a score above ~709
// overflows to +Inf and the row becomes NaN. stable=true subtracts the row
// maximum first; the result is mathematically identical but differs in the
// last bits and stays finite for large scores.
func SoftmaxRows(z *tensor.Matrix, stable bool) {
	for i := 0; i < z.Rows(); i++ {
		softmaxInPlace(z.Row(i), stable)
	}
}

func softmaxInPlace(row []float64, stable bool) {
	shift := 0.0
	if stable {
		shift = floats.Max(row)
	}

	for j, v := range row {
		row[j] = math.Exp(v - shift)
	}

	sum := floats.Sum(row)
	for j := range row {
		row[j] /= sum
	}
}

// SoftmaxResidual turns softmax probabilities into the gradient of the
// cross-entropy loss with respect to the scores, in place:
//
//	∂L/∂scores[i][j] = probs[i][j] - (1 if j == labels[i] else 0)
//
// labels must have one entry per row of probs, each in [0, probs.Cols()).
func SoftmaxResidual(probs *tensor.Matrix, labels tensor.Labels) {
	for i := 0; i < probs.Rows(); i++ {
		row := probs.Row(i)
		row[labels[i]] -= 1.0
	}
}
