// SPDX-License-Identifier: MIT

package ipm

import "errors"

// Sentinel errors. Every message is prefixed with "ipm: "; returned errors
// may wrap them with context, so match with errors.Is.
var (
	// ErrDimensionMismatch indicates that rows(A) ≠ len(b), cols(A) ≠ len(c),
	// or that A, b or c is missing or empty.
	ErrDimensionMismatch = errors.New("ipm: dimension mismatch")

	// ErrNumericalFailure indicates that the KKT system could not be solved to
	// a finite direction (singular or numerically broken system), or that an
	// iterate stopped being finite.
	ErrNumericalFailure = errors.New("ipm: numerical failure")

	// ErrNonConvergence is reported by Result.Err when the iteration limit was
	// reached before the convergence test passed. Solve itself never returns it.
	ErrNonConvergence = errors.New("ipm: iteration limit reached without convergence")

	// ErrInvalidOptions indicates a nonsensical tunable (Mu0 ≤ 0, Tol ≤ 0,
	// MaxIter < 1, NaN/Inf values, unknown KKT mode).
	ErrInvalidOptions = errors.New("ipm: invalid options")

	// ErrNonFiniteInput indicates a NaN or ±Inf entry in A, b or c.
	ErrNonFiniteInput = errors.New("ipm: NaN or Inf in problem data")
)
