// Package ridesharesolver solves small linear programs with a primal-dual
// interior-point method, with the ride-share allocation problem as its
// worked example.
//
// 🚀 What is in the box?
//
//   - ipm: the solver, with barrier-driven Newton steps on the KKT system,
//     fraction-to-boundary step control and a result-scoped trace
//   - matrix: dense row-major matrices, block assembly, LU with partial
//     pivoting
//   - problem: the built-in ride-share scenario and YAML/JSON problem files
//   - verify: an independent simplex reference and objective cross-check
//   - cmd/rideshare: the CLI to solve, print the (μ, x) trajectory, export
//     it and verify
//
// ✨ Why this layout?
//
//   - Deterministic – identical input gives bit-identical iterates
//   - No global state – every solve owns its iterates and trace
//   - Checkable – every answer can be compared against a simplex optimum
//
// The ride-share problem allocates 20 trips across three vehicle classes:
//
//	maximize  40·x1 + 20·x2 + 5·x3
//	s.t.      50·x1 + 30·x2 + 10·x3 = 1000
//	             x1 +    x2 +    x3 = 20
//	          x ≥ 0
//
// whose only feasible point, and so its optimum, is x = (20, 0, 0) with
// value 800.
//
//	go run ./cmd/rideshare solve --trace --verify
package ridesharesolver
