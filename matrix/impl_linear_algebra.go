// SPDX-License-Identifier: MIT
// Package matrix provides the operations the interior-point solver needs on
// any Matrix implementation: transpose and the matrix-vector products Ax and
// Aᵀy. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates exactly one result and never mutates operands.
//   - *Dense operands hit a flat-slice fast-path; anything else goes through
//     the bounds-checked At/Set fallback in the same loop order, so both paths
//     accumulate in the same sequence and agree bit for bit.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMatTVec   = "MatTVec"
	opBlock     = "Block"
	opLUPivot   = "LUPivot"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order on both paths.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// MatTVec computes y = mᵀ * x without materializing the transpose.
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Determinism: for every output j the sum runs over i in ascending order, so
// the result matches MatVec(Transpose(m), x) exactly.
// Complexity: Time O(r*c), Space O(c) for y.
func MatTVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for i = 0; i < rows; i++ {
				acc += d.data[i*cols+j] * x[i]
			}
			y[j] = acc
		}

		return y, nil
	}

	var v float64
	var err error
	for j = 0; j < cols; j++ {
		acc = ZeroSum
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatTVec, err)
			}
			acc += v * x[i]
		}
		y[j] = acc
	}

	return y, nil
}
