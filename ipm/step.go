// SPDX-License-Identifier: MIT

package ipm

import "math"

// stepLength applies the fraction-to-boundary rule to one positive vector:
//
//	StepFraction · min(1, min_{d_i<0} −v_i/d_i)
//
// With no negative component the step is StepFraction. Because the ratio is
// scaled by StepFraction < 1, v + step·d stays strictly positive.
func stepLength(v, d []float64) float64 {
	limit := 1.0
	for i, di := range d {
		if di < 0 {
			limit = math.Min(limit, -v[i]/di)
		}
	}

	return StepFraction * limit
}
