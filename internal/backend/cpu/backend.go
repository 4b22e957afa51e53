// Package cpu implements the dense CPU kernels used by the trainer on top of
// gonum BLAS.
//
// Every kernel blocks until its result is written. gonum may split a large
// product across worker goroutines inside that call; each output block is
// written by a single worker, so results do not depend on scheduling.
package cpu

import (
	"fmt"

	"github.com/born-ml/softreg/internal/tensor"
)

// CPUBackend runs dense matrix kernels on the CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// MatMul computes c = a @ b.
// Shapes: a (M, K), b (K, N), c (M, N).
//
// c is overwritten and must not share memory with a or b.
func (cpu *CPUBackend) MatMul(c, a, b *tensor.Matrix) {
	m, k := a.Rows(), a.Cols()
	kAlt, n := b.Rows(), b.Cols()
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}
	if c.Rows() != m || c.Cols() != n {
		panic(fmt.Sprintf("matmul: result shape %v, want [%d %d]", c.Shape(), m, n))
	}

	c.Dense().Mul(a.Dense(), b.Dense())
}

// MatMulTransA computes c = aᵀ @ b without materializing the transpose.
// Shapes: a (K, M), b (K, N), c (M, N).
//
// c is overwritten and must not share memory with a or b.
func (cpu *CPUBackend) MatMulTransA(c, a, b *tensor.Matrix) {
	k, m := a.Rows(), a.Cols()
	kAlt, n := b.Rows(), b.Cols()
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d]ᵀ @ [%d,%d]", k, m, kAlt, n))
	}
	if c.Rows() != m || c.Cols() != n {
		panic(fmt.Sprintf("matmul: result shape %v, want [%d %d]", c.Shape(), m, n))
	}

	c.Dense().Mul(a.Dense().T(), b.Dense())
}
