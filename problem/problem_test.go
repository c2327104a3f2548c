package problem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-quinteros/RideshareSolver/ipm"
	"github.com/d-quinteros/RideshareSolver/problem"
	"github.com/d-quinteros/RideshareSolver/verify"
)

const dietYAML = `
name: diet
variables: [bread, milk, s1, s2]
a:
  - [2, 1, 1, 0]
  - [1, 3, 0, 1]
b: [8, 9]
c: [-3, -2, 0, 0]
`

func TestRideShare(t *testing.T) {
	s := problem.RideShare()
	require.NoError(t, s.Validate())

	p, err := s.Problem()
	require.NoError(t, err)
	m, n := p.Dims()
	assert.Equal(t, 2, m)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{1000, 20}, p.B)
	assert.Equal(t, []float64{40, 20, 5}, p.C)

	form, sense, err := s.VerifyMode()
	require.NoError(t, err)
	assert.Equal(t, verify.Inequality, form)
	assert.Equal(t, verify.Maximize, sense)

	// The solver input does not alias the spec.
	p.B[0] = 0
	assert.Equal(t, 1000.0, s.B[0])
}

func TestParse_YAML(t *testing.T) {
	s, err := problem.Parse([]byte(dietYAML))
	require.NoError(t, err)
	assert.Equal(t, "diet", s.Name)
	assert.Equal(t, "milk", s.VariableName(1))
	assert.Equal(t, "row2", s.ConstraintName(1))

	form, sense, err := s.VerifyMode()
	require.NoError(t, err)
	assert.Equal(t, verify.Equality, form)
	assert.Equal(t, verify.Minimize, sense)

	p, err := s.Problem()
	require.NoError(t, err)
	res, err := ipm.Solve(p, nil)
	require.NoError(t, err)
	assert.True(t, res.Converged())
	assert.InDelta(t, -13.0, res.Objective, 1e-4)
}

func TestParse_JSON(t *testing.T) {
	s, err := problem.Parse([]byte(`{"a": [[1, 1]], "b": [1], "c": [1, 2], "sense": "min"}`))
	require.NoError(t, err)
	assert.Equal(t, "x2", s.VariableName(1))
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":         "a: [[1, 2]\n",
		"unknown field":    "a: [[1]]\nb: [1]\nc: [1]\nobjective: max\n",
		"empty matrix":     "a: []\nb: []\nc: []\n",
		"ragged":           "a: [[1, 2], [3]]\nb: [1, 2]\nc: [1, 2]\n",
		"short b":          "a: [[1, 2]]\nb: []\nc: [1, 2]\n",
		"long c":           "a: [[1, 2]]\nb: [1]\nc: [1, 2, 3]\n",
		"variable names":   "a: [[1, 2]]\nb: [1]\nc: [1, 2]\nvariables: [x]\n",
		"constraint names": "a: [[1, 2]]\nb: [1]\nc: [1, 2]\nconstraints: [p, q]\n",
		"bad form":         "a: [[1, 2]]\nb: [1]\nc: [1, 2]\nform: ge\n",
		"bad sense":        "a: [[1, 2]]\nb: [1]\nc: [1, 2]\nsense: sideways\n",
	}
	for name, doc := range cases {
		_, err := problem.Parse([]byte(doc))
		assert.ErrorIs(t, err, problem.ErrInvalidSpec, name)
	}
}

func TestLoadAndMarshal(t *testing.T) {
	data, err := problem.RideShare().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rideshare.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s, err := problem.Load(path)
	require.NoError(t, err)
	assert.Equal(t, problem.RideShare(), s)

	_, err = problem.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
