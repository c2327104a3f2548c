// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra toolkit used by the
// interior-point solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - Kernels: Transpose, MatVec and MatTVec, each with a *Dense fast-path
//     and a generic Matrix fallback.
//   - Block, which stitches a grid of sub-matrices into one Dense (the
//     analogue of assembling a KKT matrix block by block).
//   - LUPivot and Solve, Doolittle LU with partial pivoting for square
//     systems, reporting ErrSingular on an exactly zero pivot column.
//
// Dense storage is O(r*c); every kernel allocates a fresh result and never
// mutates its operands. The package targets small systems (tens to a few
// hundred unknowns) where a dense direct solve is the simplest correct tool.
package matrix
