// SPDX-License-Identifier: MIT

package ipm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/d-quinteros/RideshareSolver/matrix"
)

// direction is one Newton step (Δx, Δλ, Δs).
type direction struct {
	dx, dlambda, ds []float64
}

// kktSolver computes the Newton direction for the current iterate.
type kktSolver interface {
	direction(it *iterate, r *residuals) (*direction, error)
}

// newKKTSolver builds the backend for mode. Per-problem data (the constant
// blocks of the direct system, the gonum copy of A for the reduced one) is
// prepared once here and reused by every iteration of the same call.
func newKKTSolver(p *Problem, mode KKTMode) (kktSolver, error) {
	switch mode {
	case KKTDirect:
		return newDirectKKT(p)
	case KKTReduced:
		return newReducedKKT(p)
	}

	return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, mode)
}

// directKKT solves
//
//	[ 0  Aᵀ  I ] [Δx]   [-r_d]
//	[ A  0   0 ] [Δλ] = [-r_p]
//	[ S  0   X ] [Δs]   [-r_c]
//
// by assembling the full block matrix and running matrix.Solve on it.
type directKKT struct {
	m, n int
	a    matrix.Matrix
	at   matrix.Matrix
	eye  *matrix.Dense
	zNN  *matrix.Dense
	zMM  *matrix.Dense
	zMN  *matrix.Dense
	zNM  *matrix.Dense
}

func newDirectKKT(p *Problem) (*directKKT, error) {
	m, n := p.Dims()
	k := &directKKT{m: m, n: n, a: p.A}
	var err error
	if k.at, err = matrix.Transpose(p.A); err != nil {
		return nil, err
	}
	if k.eye, err = matrix.NewIdentity(n); err != nil {
		return nil, err
	}
	if k.zNN, err = matrix.NewZeros(n, n); err != nil {
		return nil, err
	}
	if k.zMM, err = matrix.NewZeros(m, m); err != nil {
		return nil, err
	}
	if k.zMN, err = matrix.NewZeros(m, n); err != nil {
		return nil, err
	}
	if k.zNM, err = matrix.NewZeros(n, m); err != nil {
		return nil, err
	}

	return k, nil
}

// system assembles the KKT matrix and right-hand side for one iterate.
func (k *directKKT) system(it *iterate, r *residuals) (*matrix.Dense, []float64, error) {
	xd, err := matrix.NewDiag(it.x)
	if err != nil {
		return nil, nil, err
	}
	sd, err := matrix.NewDiag(it.s)
	if err != nil {
		return nil, nil, err
	}
	kkt, err := matrix.Block([][]matrix.Matrix{
		{k.zNN, k.at, k.eye},
		{k.a, k.zMM, k.zMN},
		{sd, k.zNM, xd},
	})
	if err != nil {
		return nil, nil, err
	}

	rhs := make([]float64, 0, 2*k.n+k.m)
	rhs = append(rhs, r.dual...)
	rhs = append(rhs, r.primal...)
	rhs = append(rhs, r.comp...)
	floats.Scale(-1, rhs)

	return kkt, rhs, nil
}

func (k *directKKT) direction(it *iterate, r *residuals) (*direction, error) {
	kkt, rhs, err := k.system(it, r)
	if err != nil {
		return nil, err
	}
	delta, err := matrix.Solve(kkt, rhs)
	if err != nil {
		return nil, err
	}
	n, m := k.n, k.m

	return &direction{
		dx:      delta[:n],
		dlambda: delta[n : n+m],
		ds:      delta[n+m:],
	}, nil
}

// reducedKKT eliminates Δs = −r_d − AᵀΔλ and
// Δx = D(AᵀΔλ + r_d) − S⁻¹r_c, D = X·S⁻¹, leaving the normal equations
//
//	A·D·Aᵀ Δλ = −r_p − A(D·r_d − S⁻¹r_c)
//
// which are symmetric positive definite while A has full row rank and x, s > 0.
type reducedKKT struct {
	m, n int
	a    *mat.Dense
}

func newReducedKKT(p *Problem) (*reducedKKT, error) {
	m, n := p.Dims()
	vals, err := denseValues(p.A)
	if err != nil {
		return nil, err
	}

	return &reducedKKT{m: m, n: n, a: mat.NewDense(m, n, vals)}, nil
}

// errNotPositiveDefinite marks a failed Cholesky factorization.
var errNotPositiveDefinite = errors.New("normal matrix is not positive definite")

func (k *reducedKKT) direction(it *iterate, r *residuals) (*direction, error) {
	m, n := k.m, k.n

	d := make([]float64, n)
	floats.DivTo(d, it.x, it.s)

	// A·D·Aᵀ
	var scaled mat.Dense
	scaled.Apply(func(_, j int, v float64) float64 { return v * d[j] }, k.a)
	var normal mat.Dense
	normal.Mul(&scaled, k.a.T())
	sym := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			sym.SetSym(i, j, normal.At(i, j))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, errNotPositiveDefinite
	}

	// w = D·r_d − S⁻¹r_c
	w := make([]float64, n)
	floats.MulTo(w, d, r.dual)
	sinvRc := make([]float64, n)
	floats.DivTo(sinvRc, r.comp, it.s)
	floats.Sub(w, sinvRc)

	var aw mat.VecDense
	aw.MulVec(k.a, mat.NewVecDense(n, w))
	rhs := make([]float64, m)
	for i := range rhs {
		rhs[i] = -r.primal[i] - aw.AtVec(i)
	}

	var dl mat.VecDense
	if err := chol.SolveVecTo(&dl, mat.NewVecDense(m, rhs)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
		// Ill-conditioning is expected as x and s approach the boundary; the
		// direction is still usable as long as it is finite.
		klog.V(5).InfoS("normal equations ill-conditioned", "condition", float64(cond))
	}

	var atl mat.VecDense
	atl.MulVec(k.a.T(), &dl)

	dir := &direction{
		dx:      make([]float64, n),
		dlambda: mat.Col(nil, 0, &dl),
		ds:      make([]float64, n),
	}
	for j := 0; j < n; j++ {
		dir.dx[j] = d[j]*(atl.AtVec(j)+r.dual[j]) - sinvRc[j]
		dir.ds[j] = -r.dual[j] - atl.AtVec(j)
	}

	return dir, nil
}

// denseValues returns a row-major copy of a's entries.
func denseValues(a matrix.Matrix) ([]float64, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.RawData(), nil
	}
	rows, cols := a.Rows(), a.Cols()
	out := make([]float64, rows*cols)
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if out[i*cols+j], err = a.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
