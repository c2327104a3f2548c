// SPDX-License-Identifier: MIT

package ipm

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// Solve runs the primal-dual interior-point method on p.
//
// A nil opts means DefaultOptions(). Solve is SolveContext with
// context.Background().
func Solve(p *Problem, opts *Options) (*Result, error) {
	return SolveContext(context.Background(), p, opts)
}

// SolveContext is Solve with cancellation: ctx is checked before every Newton
// step and its error is returned unwrapped.
//
// Returns:
//   - (*Result, nil) when the convergence test passed (StatusConverged) or the
//     iteration limit was reached (StatusMaxIterations, see Result.Err).
//   - (nil, ErrDimensionMismatch | ErrNonFiniteInput) for bad problem data.
//   - (nil, ErrInvalidOptions) for bad tunables.
//   - (nil, ErrNumericalFailure) when the KKT system cannot be solved to a
//     finite direction or an iterate stops being finite.
//
// Every call owns its own state; concurrent calls are safe as long as the
// caller does not mutate p while they run.
func SolveContext(ctx context.Context, p *Problem, opts *Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	m, n := p.Dims()
	kkt, err := newKKTSolver(p, o.KKT)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumericalFailure, err)
	}

	it := newIterate(m, n, o.Mu0)
	var trace []TracePoint
	if o.Trace {
		trace = make([]TracePoint, 0, o.MaxIter+1)
	}
	record := func() {
		if o.Trace {
			trace = append(trace, TracePoint{Mu: it.mu, X: append([]float64(nil), it.x...)})
		}
	}

	var (
		r          *residuals
		status     = StatusMaxIterations
		iterations = o.MaxIter
	)
	for k := 0; k < o.MaxIter; k++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		if r, err = computeResiduals(p, it); err != nil {
			return nil, fmt.Errorf("%w: iteration %d: %w", ErrNumericalFailure, k, err)
		}
		if r.converged(it.mu, o.Tol) {
			record()
			status, iterations = StatusConverged, k
			break
		}

		var dir *direction
		if dir, err = kkt.direction(it, r); err != nil {
			return nil, fmt.Errorf("%w: iteration %d: %s KKT system: %w", ErrNumericalFailure, k, o.KKT, err)
		}

		alpha := stepLength(it.x, dir.dx)
		beta := stepLength(it.s, dir.ds)
		floats.AddScaled(it.x, alpha, dir.dx)
		floats.AddScaled(it.lambda, beta, dir.dlambda)
		floats.AddScaled(it.s, beta, dir.ds)
		if !allFinite(it.x) || !allFinite(it.lambda) || !allFinite(it.s) {
			return nil, fmt.Errorf("%w: iteration %d: non-finite iterate", ErrNumericalFailure, k)
		}

		record()

		stats := IterationStats{
			Iteration:               k,
			Mu:                      it.mu,
			PrimalResidual:          r.primalNorm,
			DualResidual:            r.dualNorm,
			ComplementarityResidual: r.compNorm,
			Alpha:                   alpha,
			Beta:                    beta,
		}
		if klog.V(4).Enabled() {
			klog.InfoS("ipm step",
				"iter", k, "mu", it.mu,
				"primal", r.primalNorm, "dual", r.dualNorm, "comp", r.compNorm,
				"alpha", alpha, "beta", beta)
		}
		if o.OnIteration != nil {
			o.OnIteration(stats)
		}

		it.mu *= BarrierDecay
	}

	if status != StatusConverged {
		// Report the norms of the iterate actually returned.
		if r, err = computeResiduals(p, it); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNumericalFailure, err)
		}
	}

	res := &Result{
		X:              it.x,
		Lambda:         it.lambda,
		S:              it.s,
		Objective:      floats.Dot(p.C, it.x),
		Contributions:  make([]float64, n),
		Status:         status,
		Iterations:     iterations,
		Mu:             it.mu,
		PrimalResidual: r.primalNorm,
		DualResidual:   r.dualNorm,
		Trace:          trace,
	}
	floats.MulTo(res.Contributions, it.x, p.C)

	klog.V(2).InfoS("ipm finished",
		"status", status, "iterations", iterations, "kkt", o.KKT,
		"objective", res.Objective, "primal", r.primalNorm, "dual", r.dualNorm, "mu", it.mu)

	return res, nil
}

// allFinite reports whether no entry of v is NaN or ±Inf.
func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
