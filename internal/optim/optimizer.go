// Package optim implements the parameter update rules applied after each
// mini-batch.
package optim

import "github.com/born-ml/softreg/internal/tensor"

// Optimizer updates a parameter matrix from an accumulated gradient.
//
// All optimizers must implement:
//   - Step: Apply the update to param in place
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the update for a gradient summed over count examples.
	//
	// param and grad must have the same shape. The optimizer averages grad
	// over count before scaling it by the learning rate.
	Step(param, grad *tensor.Matrix, count int)

	// GetLR returns the current learning rate.
	GetLR() float64
}
