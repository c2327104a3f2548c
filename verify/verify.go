// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
	"k8s.io/klog/v2"

	"github.com/d-quinteros/RideshareSolver/ipm"
)

// Form selects how the rows of A are read.
type Form int

const (
	// Equality reads the constraints as Ax = b.
	Equality Form = iota
	// Inequality reads the constraints as Ax ≤ b.
	Inequality
)

// String implements fmt.Stringer.
func (f Form) String() string {
	switch f {
	case Equality:
		return "equality"
	case Inequality:
		return "inequality"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm maps "equality"/"eq" and "inequality"/"ineq"/"le" to a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equality", "eq", "":
		return Equality, nil
	case "inequality", "ineq", "le":
		return Inequality, nil
	}

	return 0, fmt.Errorf("%w: form %q", ErrBadChoice, s)
}

// Sense selects the optimization direction of the reference solve.
type Sense int

const (
	// Minimize solves min cᵀx.
	Minimize Sense = iota
	// Maximize solves max cᵀx.
	Maximize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// ParseSense maps "minimize"/"min" and "maximize"/"max" to a Sense.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimize", "min", "":
		return Minimize, nil
	case "maximize", "max":
		return Maximize, nil
	}

	return 0, fmt.Errorf("%w: sense %q", ErrBadChoice, s)
}

// Solution is the simplex optimum of one reading of a problem.
type Solution struct {
	Form  Form
	Sense Sense

	// X is the optimal point over the original n variables; slack columns
	// added for Inequality are dropped.
	X []float64
	// Objective is cᵀX with the caller's c.
	Objective float64
}

// Reference solves p with gonum's simplex under the given form and sense.
// tol is handed to lp.Simplex as its degeneracy tolerance.
//
// Errors: the problem's own validation errors (ipm.ErrDimensionMismatch,
// ipm.ErrNonFiniteInput), ErrBadChoice, and ErrReference wrapping the lp
// error for infeasible, unbounded or singular data.
func Reference(p *ipm.Problem, form Form, sense Sense, tol float64) (sol *Solution, err error) {
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if form != Equality && form != Inequality {
		return nil, fmt.Errorf("%w: %v", ErrBadChoice, form)
	}
	if sense != Minimize && sense != Maximize {
		return nil, fmt.Errorf("%w: %v", ErrBadChoice, sense)
	}

	m, n := p.Dims()
	cols := n
	if form == Inequality {
		cols += m
	}

	a := mat.NewDense(m, cols, nil)
	var v float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if v, err = p.A.At(i, j); err != nil {
				return nil, err
			}
			a.Set(i, j, v)
		}
		if form == Inequality {
			a.Set(i, n+i, 1)
		}
	}

	c := make([]float64, cols)
	copy(c, p.C)
	if sense == Maximize {
		floats.Scale(-1, c)
	}
	b := append([]float64(nil), p.B...)

	// lp.Simplex panics on some degenerate inputs instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			sol, err = nil, fmt.Errorf("%w: %v", ErrReference, r)
		}
	}()

	optF, optX, err := lp.Simplex(c, a, b, tol, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReference, err)
	}

	sol = &Solution{
		Form:      form,
		Sense:     sense,
		X:         optX[:n:n],
		Objective: optF,
	}
	if sense == Maximize {
		sol.Objective = -optF
	}
	klog.V(2).InfoS("simplex reference", "form", form, "sense", sense, "objective", sol.Objective)

	return sol, nil
}

// CrossCheck compares an interior-point result with a reference solution and
// returns ErrMismatch when |res.Objective − ref.Objective| > tol.
func CrossCheck(res *ipm.Result, ref *Solution, tol float64) error {
	if res == nil || ref == nil {
		return fmt.Errorf("%w: missing result", ErrMismatch)
	}
	if diff := math.Abs(res.Objective - ref.Objective); !(diff <= tol) {
		return fmt.Errorf("%w: interior point %.9g, simplex %.9g (|Δ|=%.3g > %.3g)",
			ErrMismatch, res.Objective, ref.Objective, diff, tol)
	}

	return nil
}
