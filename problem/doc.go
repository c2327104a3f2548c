// SPDX-License-Identifier: MIT

// Package problem describes linear programs as data: the built-in ride-share
// scenario and problem files in YAML or JSON.
//
// A file looks like:
//
//	name: ride-share
//	variables: [x1, x2, x3]
//	constraints: [budget, trips]
//	a:
//	  - [50, 30, 10]
//	  - [1, 1, 1]
//	b: [1000, 20]
//	c: [40, 20, 5]
//	form: inequality   # how verify reads A x ? b
//	sense: maximize    # direction of the verify reference
//
// Spec.Problem converts the data into an *ipm.Problem.
package problem
