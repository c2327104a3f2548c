// SPDX-License-Identifier: MIT

// Package verify re-solves a linear program with an independent simplex
// implementation and compares its optimum against an interior-point result.
//
// The reference solver is gonum's optimize/convex/lp Simplex, which handles
// the standard form min cᵀx s.t. Ax = b, x ≥ 0. Two reading choices map the
// same (A, b, c) data onto that form:
//
//   - Form: Equality keeps Ax = b; Inequality reads Ax ≤ b and appends one
//     slack column per row.
//   - Sense: Minimize keeps c; Maximize solves with −c and negates the optimum
//     back, so Solution.Objective is always cᵀx at the reference point.
//
// CrossCheck reports ErrMismatch when the two objectives differ by more
// than the given tolerance.
package verify
