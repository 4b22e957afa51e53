// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trainer runs one epoch of mini-batch SGD for softmax regression.
//
// # Basic Usage
//
//	x, _ := tensor.FromSlice(features, m, n)
//	theta, _ := tensor.FromSlice(weights, n, k)
//
//	err := trainer.RunEpoch(x, labels, theta, trainer.Config{
//	    LearningRate: 0.1,
//	    BatchSize:    32,
//	})
//	if errors.Is(err, trainer.ErrInvalidShape) {
//	    // weights do not fit the data
//	}
//
// weights is updated in place. Call RunEpoch again for another epoch.
//
// # Numerical Stability
//
// Scores are exponentiated without subtracting the row maximum, so very large
// scores overflow to NaN. Set Config.StableSoftmax to shift them first; this
// changes results slightly.
package trainer

import (
	"github.com/born-ml/softreg/internal/tensor"
	"github.com/born-ml/softreg/internal/trainer"
)

// Config holds the hyperparameters of one epoch.
type Config = trainer.Config

// ValidationError describes why RunEpoch rejected its inputs.
type ValidationError = trainer.ValidationError

// Precondition failures reported by RunEpoch.
var (
	ErrInvalidShape          = trainer.ErrInvalidShape
	ErrLabelOutOfRange       = trainer.ErrLabelOutOfRange
	ErrInvalidHyperparameter = trainer.ErrInvalidHyperparameter
)

// RunEpoch performs one pass of mini-batch SGD over x and y, updating theta
// in place. theta is unchanged when an error is returned.
func RunEpoch(x *tensor.Matrix, y tensor.Labels, theta *tensor.Matrix, cfg Config) error {
	return trainer.RunEpoch(x, y, theta, cfg)
}
