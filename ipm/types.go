// SPDX-License-Identifier: MIT

package ipm

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/d-quinteros/RideshareSolver/matrix"
)

// Defaults and fixed algorithm constants.
const (
	// DefaultMu0 is the initial barrier parameter.
	DefaultMu0 = 1.0
	// DefaultTol bounds ‖r_p‖₂, ‖r_d‖₂ and μ at convergence.
	DefaultTol = 1e-6
	// DefaultMaxIter caps the number of Newton steps.
	DefaultMaxIter = 100

	// BarrierDecay is the fixed factor applied to μ after every step.
	BarrierDecay = 0.1
	// StepFraction is the fraction-to-boundary factor for α and β.
	StepFraction = 0.99

	// InitialPrimal and InitialSlack seed x and s; λ starts at zero.
	InitialPrimal = 0.5
	InitialSlack  = 1.0
)

// Problem holds the data of one linear program. The solver never mutates it;
// A, B and C stay owned by the caller.
type Problem struct {
	A matrix.Matrix // m×n constraint matrix
	B []float64     // length m
	C []float64     // length n
}

// NewProblem copies the row-slice literal a into a Dense matrix and validates
// the triple. b and c are referenced, not copied. A NaN or ±Inf entry
// anywhere, A included, is ErrNonFiniteInput.
func NewProblem(a [][]float64, b, c []float64) (*Problem, error) {
	am, err := matrix.NewDenseFrom(a)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, fmt.Errorf("%w: A: %w", ErrNonFiniteInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: A: %w", ErrDimensionMismatch, err)
	}
	p := &Problem{A: am, B: b, C: c}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Dims returns (m, n): the number of constraints and variables.
func (p *Problem) Dims() (m, n int) { return p.A.Rows(), p.A.Cols() }

// Validate checks presence and dimension compatibility of A, b and c, and
// that b and c are finite.
func (p *Problem) Validate() error {
	if p == nil || p.A == nil {
		return fmt.Errorf("%w: nil problem or constraint matrix", ErrDimensionMismatch)
	}
	m, n := p.Dims()
	switch {
	case m < 1 || n < 1:
		return fmt.Errorf("%w: A is %dx%d", ErrDimensionMismatch, m, n)
	case len(p.B) != m:
		return fmt.Errorf("%w: A has %d rows but len(b)=%d", ErrDimensionMismatch, m, len(p.B))
	case len(p.C) != n:
		return fmt.Errorf("%w: A has %d columns but len(c)=%d", ErrDimensionMismatch, n, len(p.C))
	}
	for i, v := range p.B {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: b[%d]=%v", ErrNonFiniteInput, i, v)
		}
	}
	for j, v := range p.C {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: c[%d]=%v", ErrNonFiniteInput, j, v)
		}
	}

	return nil
}

// KKTMode selects how the Newton direction is computed.
type KKTMode int

const (
	// KKTDirect assembles the full (2n+m)×(2n+m) block system and solves it
	// with LU and partial pivoting.
	KKTDirect KKTMode = iota

	// KKTReduced eliminates Δx and Δs and solves the m×m normal equations
	// A·D·Aᵀ Δλ = rhs, D = X·S⁻¹, by Cholesky. Cheaper for n ≫ m, but it loses
	// definiteness on degenerate problems near the optimum, where it reports
	// ErrNumericalFailure.
	KKTReduced
)

// String implements fmt.Stringer.
func (k KKTMode) String() string {
	switch k {
	case KKTDirect:
		return "direct"
	case KKTReduced:
		return "reduced"
	default:
		return fmt.Sprintf("KKTMode(%d)", int(k))
	}
}

// ParseKKTMode maps "direct" / "reduced" (case-insensitive) to a KKTMode.
func ParseKKTMode(s string) (KKTMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "":
		return KKTDirect, nil
	case "reduced", "normal", "schur":
		return KKTReduced, nil
	}

	return 0, fmt.Errorf("%w: unknown KKT mode %q", ErrInvalidOptions, s)
}

// Options configures a solve.
//
// Fields:
//   - Mu0         — initial barrier parameter (> 0).
//   - Tol         — convergence tolerance on ‖r_p‖₂, ‖r_d‖₂ and μ (> 0).
//   - MaxIter     — Newton step limit (≥ 1).
//   - KKT         — direction backend, KKTDirect by default.
//   - Trace       — record (μ, x) per iteration into Result.Trace.
//   - OnIteration — optional callback invoked after every Newton step.
type Options struct {
	Mu0         float64
	Tol         float64
	MaxIter     int
	KKT         KKTMode
	Trace       bool
	OnIteration func(IterationStats)
}

// DefaultOptions returns Mu0=1, Tol=1e-6, MaxIter=100, direct KKT, no trace.
func DefaultOptions() Options {
	return Options{
		Mu0:     DefaultMu0,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		KKT:     KKTDirect,
	}
}

// Validate rejects nonsensical tunables with ErrInvalidOptions.
func (o *Options) Validate() error {
	switch {
	case !(o.Mu0 > 0) || math.IsInf(o.Mu0, 1):
		return fmt.Errorf("%w: Mu0=%v must be finite and > 0", ErrInvalidOptions, o.Mu0)
	case !(o.Tol > 0) || math.IsInf(o.Tol, 1):
		return fmt.Errorf("%w: Tol=%v must be finite and > 0", ErrInvalidOptions, o.Tol)
	case o.MaxIter < 1:
		return fmt.Errorf("%w: MaxIter=%d must be >= 1", ErrInvalidOptions, o.MaxIter)
	case o.KKT != KKTDirect && o.KKT != KKTReduced:
		return fmt.Errorf("%w: %v", ErrInvalidOptions, o.KKT)
	}

	return nil
}

// Status tells how a solve terminated.
type Status int

const (
	// StatusConverged: the residual and barrier test passed.
	StatusConverged Status = iota + 1
	// StatusMaxIterations: MaxIter steps ran without passing the test.
	StatusMaxIterations
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max-iterations"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// TracePoint is one entry of the solution trajectory: the barrier value an
// iteration ran with and the primal iterate it produced. The final converged
// entry pairs the terminating μ with the unchanged x.
type TracePoint struct {
	Mu float64   `json:"mu"`
	X  []float64 `json:"x"`
}

// IterationStats is handed to Options.OnIteration after every Newton step.
// Residual norms describe the iterate the step started from.
type IterationStats struct {
	Iteration               int
	Mu                      float64
	PrimalResidual          float64
	DualResidual            float64
	ComplementarityResidual float64
	Alpha                   float64
	Beta                    float64
}

// Result is the outcome of one solve. Every slice is freshly allocated.
type Result struct {
	X      []float64 // primal solution (length n)
	Lambda []float64 // dual multipliers (length m)
	S      []float64 // dual slacks (length n)

	// Objective is the scalar c·x.
	Objective float64
	// Contributions is the element-wise product x∘c; it sums to Objective up
	// to rounding.
	Contributions []float64

	Status     Status
	Iterations int     // Newton steps taken
	Mu         float64 // barrier value at termination

	// Residual norms of the returned iterate.
	PrimalResidual float64
	DualResidual   float64

	// Trace is nil unless Options.Trace was set.
	Trace []TracePoint
}

// Converged reports whether the convergence test passed.
func (r *Result) Converged() bool { return r != nil && r.Status == StatusConverged }

// Err returns nil for a converged result and ErrNonConvergence otherwise, for
// callers that prefer to treat the iteration limit as a failure.
func (r *Result) Err() error {
	if r.Converged() {
		return nil
	}

	return ErrNonConvergence
}
