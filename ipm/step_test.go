package ipm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepLength(t *testing.T) {
	cases := []struct {
		name string
		v, d []float64
		want float64
	}{
		{"no negative direction", []float64{1, 2}, []float64{3, 0}, StepFraction},
		{"far boundary", []float64{1, 2}, []float64{-0.5, 1}, StepFraction},
		{"binding component", []float64{1, 2}, []float64{-4, -1}, StepFraction * 0.25},
		{"smallest ratio wins", []float64{1, 0.1}, []float64{-2, -1}, StepFraction * 0.1},
	}
	for _, tc := range cases {
		got := stepLength(tc.v, tc.d)
		assert.InDelta(t, tc.want, got, 1e-15, tc.name)
		for i := range tc.v {
			assert.Greater(t, tc.v[i]+got*tc.d[i], 0.0, "%s: component %d must stay positive", tc.name, i)
		}
	}
}

func TestNewIterate(t *testing.T) {
	it := newIterate(2, 3, 0.5)
	assert.Equal(t, []float64{InitialPrimal, InitialPrimal, InitialPrimal}, it.x)
	assert.Equal(t, []float64{InitialSlack, InitialSlack, InitialSlack}, it.s)
	assert.Equal(t, []float64{0, 0}, it.lambda)
	assert.Equal(t, 0.5, it.mu)
}

// TestComputeResiduals checks r_d, r_p and r_c at the starting point of the
// ride-share problem.
func TestComputeResiduals(t *testing.T) {
	p, err := NewProblem([][]float64{{50, 30, 10}, {1, 1, 1}}, []float64{1000, 20}, []float64{40, 20, 5})
	require.NoError(t, err)
	it := newIterate(2, 3, 1)

	r, err := computeResiduals(p, it)
	require.NoError(t, err)
	assert.Equal(t, []float64{-39, -19, -4}, r.dual)
	assert.Equal(t, []float64{-955, -18.5}, r.primal)
	assert.Equal(t, []float64{-0.5, -0.5, -0.5}, r.comp)
	assert.False(t, r.converged(it.mu, DefaultTol))
}

// TestKKTBackendsAgree compares one Newton direction from both backends.
func TestKKTBackendsAgree(t *testing.T) {
	p, err := NewProblem([][]float64{{1, 2, 1, 0}, {3, 1, 0, 1}}, []float64{4, 6}, []float64{-1, -1, 0, 0})
	require.NoError(t, err)
	it := newIterate(2, 4, 1)
	r, err := computeResiduals(p, it)
	require.NoError(t, err)

	direct, err := newKKTSolver(p, KKTDirect)
	require.NoError(t, err)
	reduced, err := newKKTSolver(p, KKTReduced)
	require.NoError(t, err)

	dd, err := direct.direction(it, r)
	require.NoError(t, err)
	rd, err := reduced.direction(it, r)
	require.NoError(t, err)

	assert.InDeltaSlice(t, dd.dx, rd.dx, 1e-9)
	assert.InDeltaSlice(t, dd.dlambda, rd.dlambda, 1e-9)
	assert.InDeltaSlice(t, dd.ds, rd.ds, 1e-9)
}
