// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LUFactors holds a row-pivoted Doolittle factorization P*A = L*U packed into
// one matrix: the strict lower triangle stores L (unit diagonal implied) and
// the upper triangle stores U. Piv[i] is the original row now at position i.
type LUFactors struct {
	lu  *Dense
	Piv []int
}

// LUPivot computes P*A = L*U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: validate a (not nil, square) and copy it into a working Dense,
//     rejecting NaN/±Inf entries.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]|
//     (first one wins ties), swap it into place, then eliminate below it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (non-finite
//     entry), ErrSingular (the best available pivot in some column is 0).
//
// Determinism:
//   - Fixed k→i→j order and a fixed tie rule give identical factors for
//     identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Singularity is detected only for exactly zero pivots. A near-singular
//     matrix factorizes and yields large (possibly non-finite) solutions;
//     Solve reports the non-finite case as ErrNaNInf.
func LUPivot(a Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opLUPivot, err)
	}
	n := a.Rows()
	w, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLUPivot, err)
	}
	var i, j, k int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opLUPivot, err)
			}
			if isNonFinite(v) {
				return nil, matrixErrorf(opLUPivot, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			w.data[i*n+j] = v
		}
	}

	piv := make([]int, n)
	for i = range piv {
		piv[i] = i
	}

	var p int
	var best, pv, f float64
	d := w.data
	for k = 0; k < n; k++ {
		// Partial pivot search on column k.
		p, best = k, math.Abs(d[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(d[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, matrixErrorf(opLUPivot, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		pv = d[k*n+k]
		for i = k + 1; i < n; i++ {
			f = d[i*n+k] / pv
			d[i*n+k] = f // store L[i,k]
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				d[i*n+j] -= f * d[k*n+j]
			}
		}
	}

	return &LUFactors{lu: w, Piv: piv}, nil
}

// SolveVec solves A*x = b using the stored factors.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a bad b; ErrNaNInf when the
//     solution is not finite (overflow on a near-singular system).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LUFactors) SolveVec(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	d := f.lu.data
	x := make([]float64, n)
	var i, j int

	// Forward substitution on the permuted right-hand side: L*y = P*b.
	for i = 0; i < n; i++ {
		x[i] = b[f.Piv[i]]
		for j = 0; j < i; j++ {
			x[i] -= d[i*n+j] * x[j]
		}
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			x[i] -= d[i*n+j] * x[j]
		}
		x[i] /= d[i*n+i]
	}

	for i = 0; i < n; i++ {
		if isNonFinite(x[i]) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("x[%d]: %w", i, ErrNaNInf))
		}
	}

	return x, nil
}

// Solve factorizes a with LUPivot and solves a*x = b in one call.
// Errors: see LUPivot and (*LUFactors).SolveVec.
func Solve(a Matrix, b []float64) ([]float64, error) {
	f, err := LUPivot(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.SolveVec(b)
}
