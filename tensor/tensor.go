// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public shaped containers for softreg.
//
// A Matrix is a dense row-major float64 matrix that carries its own shape.
// FromSlice wraps an existing buffer without copying, which is how callers
// hand their features and weights to the trainer:
//
//	x, err := tensor.FromSlice(features, rows, cols)
//	theta, err := tensor.FromSlice(weights, cols, classes)
package tensor

import (
	"github.com/born-ml/softreg/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Matrix is a dense row-major float64 matrix.
type Matrix = tensor.Matrix

// Labels is a vector of class indices.
type Labels = tensor.Labels

// ErrInvalidShape reports dimensions that do not match the data or an operand.
var ErrInvalidShape = tensor.ErrInvalidShape

// NewMatrix allocates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return tensor.NewMatrix(rows, cols)
}

// FromSlice wraps data as a rows×cols matrix without copying.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	return tensor.FromSlice(data, rows, cols)
}
