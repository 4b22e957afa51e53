package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/softreg/internal/backend/cpu"
	"github.com/born-ml/softreg/internal/tensor"
)

// Probabilities computes softmax(x @ theta) for every row of x.
//
// Parameters:
//   - x: features [m, n]
//   - theta: weights [n, k]
//   - stable: subtract the row maximum before exponentiating
//
// Returns a freshly allocated [m, k] matrix whose rows sum to 1, or
// ErrInvalidShape when x.Cols() != theta.Rows(). x and theta must not be nil;
// a nil matrix panics.
func Probabilities(x, theta *tensor.Matrix, stable bool) (*tensor.Matrix, error) {
	if x.Cols() != theta.Rows() {
		return nil, fmt.Errorf("%w: features %v do not match weights %v",
			tensor.ErrInvalidShape, x.Shape(), theta.Shape())
	}

	probs, err := tensor.NewMatrix(x.Rows(), theta.Cols())
	if err != nil {
		return nil, err
	}
	cpu.New().MatMul(probs, x, theta)
	SoftmaxRows(probs, stable)
	return probs, nil
}

// CrossEntropy returns the mean negative log-likelihood of labels under probs.
//
//	Loss = -(1/m) Σ log(probs[i][labels[i]])
//
// A zero probability for a true label yields +Inf; NaN rows propagate.
// labels must have at least probs.Rows() entries, each in [0, probs.Cols());
// shorter or out-of-range labels panic.
func CrossEntropy(probs *tensor.Matrix, labels tensor.Labels) float64 {
	total := 0.0
	for i := 0; i < probs.Rows(); i++ {
		total -= math.Log(probs.At(i, int(labels[i])))
	}
	return total / float64(probs.Rows())
}

// Accuracy returns the fraction of rows whose most probable class is the label.
// Like CrossEntropy, it panics if labels has fewer than probs.Rows() entries.
func Accuracy(probs *tensor.Matrix, labels tensor.Labels) float64 {
	correct := 0
	for i := 0; i < probs.Rows(); i++ {
		if floats.MaxIdx(probs.Row(i)) == int(labels[i]) {
			correct++
		}
	}
	return float64(correct) / float64(probs.Rows())
}
