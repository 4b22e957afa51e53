// Package trainer runs mini-batch gradient descent epochs for multinomial
// (softmax) logistic regression.
//
// One epoch walks the dataset front to back in contiguous mini-batches and
// updates the weights after every batch:
//
//	probs = softmax(X[batch] @ Θ)
//	probs[i][y[i]] -= 1
//	Θ -= lr * (X[batch]ᵀ @ probs) / len(batch)
//
// The caller owns X, y and Θ. RunEpoch borrows them for the duration of the
// call, writes only Θ and keeps no reference afterwards. Callers must not
// touch any of the three from another goroutine while RunEpoch runs.
package trainer

import (
	"iter"

	"github.com/born-ml/softreg/internal/backend/cpu"
	"github.com/born-ml/softreg/internal/nn"
	"github.com/born-ml/softreg/internal/optim"
	"github.com/born-ml/softreg/internal/tensor"
)

// RunEpoch performs one pass of mini-batch SGD over x and y, updating theta
// in place.
//
// Parameters:
//   - x: features [m, n]
//   - y: labels, len m, each in [0, k)
//   - theta: weights [n, k], updated in place
//   - cfg: learning rate, batch size, class count and softmax mode
//
// All preconditions are checked before the first update; on error theta is
// left untouched.
func RunEpoch(x *tensor.Matrix, y tensor.Labels, theta *tensor.Matrix, cfg Config) error {
	k, err := validate(x, y, theta, cfg)
	if err != nil {
		return err
	}

	e := newEpoch(x.Rows(), x.Cols(), k, cfg)
	for start, end := range batches(x.Rows(), cfg.BatchSize) {
		e.step(x.RowRange(start, end), y[start:end], theta)
	}
	return nil
}

// epoch holds the per-call scratch buffers. They are sized once for the
// configured batch and reused by every batch of the call.
type epoch struct {
	backend *cpu.CPUBackend
	sgd     *optim.SGD
	stable  bool
	classes int
	probs   []float64      // [batch, k] scores, then probabilities, then residuals
	grad    *tensor.Matrix // [n, k]
}

func newEpoch(rows, features, classes int, cfg Config) *epoch {
	batch := min(cfg.BatchSize, rows)
	grad, err := tensor.NewMatrix(features, classes)
	if err != nil {
		// Dimensions were validated by the caller.
		panic(err)
	}
	return &epoch{
		backend: cpu.New(),
		sgd:     optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate}),
		stable:  cfg.StableSoftmax,
		classes: classes,
		probs:   make([]float64, batch*classes),
		grad:    grad,
	}
}

// step trains on one mini-batch. xb has b rows and yb has b labels.
func (e *epoch) step(xb *tensor.Matrix, yb tensor.Labels, theta *tensor.Matrix) {
	b := xb.Rows()
	probs, err := tensor.FromSlice(e.probs[:b*e.classes], b, e.classes)
	if err != nil {
		panic(err)
	}

	// Forward: scores, then softmax over each row.
	e.backend.MatMul(probs, xb, theta)
	nn.SoftmaxRows(probs, e.stable)

	// Backward: dL/dscores = probs - onehot(y), dL/dΘ = xbᵀ @ residual.
	nn.SoftmaxResidual(probs, yb)
	e.backend.MatMulTransA(e.grad, xb, probs)

	e.sgd.Step(theta, e.grad, b)
}

// batches yields the [start, end) row ranges of consecutive mini-batches
// covering [0, rows). Every range has size rows except possibly the last,
// which holds the remaining rows%size rows.
func batches(rows, size int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for start := 0; start < rows; start += size {
			if !yield(start, min(start+size, rows)) {
				return
			}
		}
	}
}

// validate checks every precondition of RunEpoch and returns the class count.
func validate(x *tensor.Matrix, y tensor.Labels, theta *tensor.Matrix, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if x == nil || theta == nil {
		return 0, invalid(ErrInvalidShape, "features and weights must not be nil")
	}

	m, n := x.Rows(), x.Cols()
	if m == 0 || n == 0 || theta.Cols() == 0 {
		return 0, invalid(ErrInvalidShape, "features %v and weights %v must be non-empty", x.Shape(), theta.Shape())
	}
	if len(y) != m {
		return 0, invalid(ErrInvalidShape, "got %d labels for %d rows", len(y), m)
	}
	if theta.Rows() != n {
		return 0, invalid(ErrInvalidShape, "weights %v need %d rows to match features %v", theta.Shape(), n, x.Shape())
	}

	k := cfg.NumClasses
	if k == 0 {
		k = y.NumClasses()
	}
	if i := y.FirstOutOfRange(k); i >= 0 {
		return 0, invalid(ErrLabelOutOfRange, "label %d at row %d is outside [0, %d)", y[i], i, k)
	}
	if theta.Cols() != k {
		return 0, invalid(ErrInvalidShape, "weights %v need %d columns for %d classes", theta.Shape(), k, k)
	}
	return k, nil
}
