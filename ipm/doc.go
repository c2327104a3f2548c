// SPDX-License-Identifier: MIT

// Package ipm solves small linear programs with a primal-dual interior-point
// method driven by a logarithmic barrier.
//
// 🚀 What does it solve?
//
//	Given A (m×n), b (m) and c (n), the solver walks a strictly positive
//	primal iterate x, slack s and free dual λ towards a point where
//
//	  Aᵀλ + s = c      (dual feasibility,   residual r_d)
//	  A x     = b      (primal feasibility, residual r_p)
//	  X S 1   = μ 1    (perturbed complementarity, residual r_c)
//
//	while the barrier μ shrinks geometrically (μ ← 0.1·μ). At every step the
//	Newton system of those equations (the KKT system) is solved densely and a
//	fraction-to-boundary rule (0.99 of the distance to the boundary) keeps x
//	and s strictly positive.
//
// ✨ Key features:
//   - deterministic: identical inputs give bit-identical iterates
//   - no package state: every call owns its iterates and optional trace
//   - explicit outcomes: converged vs. iteration limit is a Status, singular
//     KKT systems surface as ErrNumericalFailure
//   - two KKT backends: KKTDirect (full block system, LU with partial
//     pivoting) and KKTReduced (normal equations A·D·Aᵀ with Cholesky)
//
// ⚙️ Usage:
//
//	p, err := ipm.NewProblem(
//		[][]float64{{50, 30, 10}, {1, 1, 1}},
//		[]float64{1000, 20},
//		[]float64{40, 20, 5},
//	)
//	if err != nil { ... }
//	opts := ipm.DefaultOptions()
//	opts.Trace = true
//	res, err := ipm.Solve(p, &opts)
//	if err != nil { ... }           // ErrDimensionMismatch, ErrNumericalFailure, ...
//	if !res.Converged() { ... }     // StatusMaxIterations
//	fmt.Println(res.X, res.Objective)
//
// Performance:
//
//   - Direct mode: O((2n+m)³) per iteration.
//   - Reduced mode: O(m²n + m³) per iteration.
package ipm
