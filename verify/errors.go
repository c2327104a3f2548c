// SPDX-License-Identifier: MIT

package verify

import "errors"

var (
	// ErrMismatch indicates that the interior-point objective and the simplex
	// reference differ by more than the requested tolerance.
	ErrMismatch = errors.New("verify: objective mismatch")

	// ErrReference indicates that the simplex reference could not be computed
	// (infeasible, unbounded or rank-deficient data).
	ErrReference = errors.New("verify: reference solve failed")

	// ErrBadChoice indicates an unknown Form or Sense name.
	ErrBadChoice = errors.New("verify: unknown form or sense")
)
