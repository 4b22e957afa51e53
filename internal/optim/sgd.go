package optim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/softreg/internal/tensor"
)

// SGD implements plain Stochastic Gradient Descent.
//
// Update rule for a gradient summed over b examples:
//
//	param = param - lr * gradient / b
//
// There is no momentum and no weight decay.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	sgd.Step(theta, grad, batchSize)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr: config.LR,
	}
}

// Step performs param -= lr * grad / count in place.
//
// Panics if the shapes differ or count is not positive.
func (s *SGD) Step(param, grad *tensor.Matrix, count int) {
	if !param.Shape().Equal(grad.Shape()) {
		panic(fmt.Sprintf("sgd: gradient shape %v does not match parameter %v", grad.Shape(), param.Shape()))
	}
	if count <= 0 {
		panic(fmt.Sprintf("sgd: example count must be > 0, got %d", count))
	}

	floats.AddScaled(param.Data(), -s.lr/float64(count), grad.Data())
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
