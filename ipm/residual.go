// SPDX-License-Identifier: MIT

package ipm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/d-quinteros/RideshareSolver/matrix"
)

// iterate is the mutable working state of one solve call.
type iterate struct {
	x      []float64 // primal, > 0
	s      []float64 // dual slack, > 0
	lambda []float64 // dual, free sign
	mu     float64   // barrier, > 0
}

// newIterate allocates the fixed interior starting point.
func newIterate(m, n int, mu0 float64) *iterate {
	it := &iterate{
		x:      make([]float64, n),
		s:      make([]float64, n),
		lambda: make([]float64, m),
		mu:     mu0,
	}
	floats.AddConst(InitialPrimal, it.x)
	floats.AddConst(InitialSlack, it.s)

	return it
}

// residuals of the perturbed KKT conditions at one iterate.
type residuals struct {
	dual   []float64 // r_d = Aᵀλ + s − c
	primal []float64 // r_p = Ax − b
	comp   []float64 // r_c = x∘s − μ

	dualNorm, primalNorm, compNorm float64
}

// computeResiduals evaluates r_d, r_p, r_c and their Euclidean norms.
func computeResiduals(p *Problem, it *iterate) (*residuals, error) {
	rd, err := matrix.MatTVec(p.A, it.lambda)
	if err != nil {
		return nil, err
	}
	floats.Add(rd, it.s)
	floats.Sub(rd, p.C)

	rp, err := matrix.MatVec(p.A, it.x)
	if err != nil {
		return nil, err
	}
	floats.Sub(rp, p.B)

	rc := make([]float64, len(it.x))
	floats.MulTo(rc, it.x, it.s)
	floats.AddConst(-it.mu, rc)

	return &residuals{
		dual:       rd,
		primal:     rp,
		comp:       rc,
		dualNorm:   floats.Norm(rd, 2),
		primalNorm: floats.Norm(rp, 2),
		compNorm:   floats.Norm(rc, 2),
	}, nil
}

// converged is the termination test: both feasibility residuals and the
// barrier itself below tol.
func (r *residuals) converged(mu, tol float64) bool {
	return r.primalNorm < tol && r.dualNorm < tol && mu < tol
}
