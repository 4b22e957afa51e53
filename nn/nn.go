// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public softmax and loss helpers for softreg.
//
// These are evaluation helpers; the trainer applies the same softmax
// internally during an epoch.
//
//	probs, err := nn.Probabilities(x, theta, false)
//	loss := nn.CrossEntropy(probs, y)
//	acc := nn.Accuracy(probs, y)
package nn

import (
	"github.com/born-ml/softreg/internal/nn"
	"github.com/born-ml/softreg/internal/tensor"
)

// SoftmaxRows replaces every row of z with its softmax, in place.
// stable subtracts the row maximum first.
func SoftmaxRows(z *tensor.Matrix, stable bool) {
	nn.SoftmaxRows(z, stable)
}

// Probabilities computes softmax(x @ theta) for every row of x.
func Probabilities(x, theta *tensor.Matrix, stable bool) (*tensor.Matrix, error) {
	return nn.Probabilities(x, theta, stable)
}

// CrossEntropy returns the mean negative log-likelihood of labels under probs.
func CrossEntropy(probs *tensor.Matrix, labels tensor.Labels) float64 {
	return nn.CrossEntropy(probs, labels)
}

// Accuracy returns the fraction of rows whose most probable class is the label.
func Accuracy(probs *tensor.Matrix, labels tensor.Labels) float64 {
	return nn.Accuracy(probs, labels)
}
