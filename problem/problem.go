// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/d-quinteros/RideshareSolver/ipm"
	"github.com/d-quinteros/RideshareSolver/verify"
)

// ErrInvalidSpec indicates a problem file that cannot describe a linear
// program (missing data, mismatched lengths, bad names).
var ErrInvalidSpec = errors.New("problem: invalid spec")

// Spec is the serializable description of one linear program.
type Spec struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Variables   []string    `json:"variables,omitempty"`
	Constraints []string    `json:"constraints,omitempty"`
	A           [][]float64 `json:"a"`
	B           []float64   `json:"b"`
	C           []float64   `json:"c"`

	// Form and Sense tell verify how to read the data for the simplex
	// reference. Empty means equality / minimize.
	Form  string `json:"form,omitempty"`
	Sense string `json:"sense,omitempty"`
}

// RideShare returns the built-in scenario: three vehicle classes with costs
// 50, 30 and 10 per vehicle, a budget of 1000, 20 trips, and 40, 20 and 5
// riders served per vehicle.
func RideShare() *Spec {
	return &Spec{
		Name:        "ride-share",
		Description: "allocate 20 trips across three vehicle classes within a budget of 1000",
		Variables:   []string{"x1", "x2", "x3"},
		Constraints: []string{"budget", "trips"},
		A: [][]float64{
			{50, 30, 10},
			{1, 1, 1},
		},
		B:     []float64{1000, 20},
		C:     []float64{40, 20, 5},
		Form:  verify.Inequality.String(),
		Sense: verify.Maximize.String(),
	}
}

// Parse decodes a YAML or JSON document into a validated Spec.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the problem file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Marshal encodes s as YAML.
func (s *Spec) Marshal() ([]byte, error) { return yaml.Marshal(s) }

// Validate checks that A is a non-empty rectangle matching b and c, that the
// optional names match the dimensions, and that Form and Sense parse.
func (s *Spec) Validate() error {
	if len(s.A) == 0 || len(s.A[0]) == 0 {
		return fmt.Errorf("%w: empty constraint matrix", ErrInvalidSpec)
	}
	m, n := len(s.A), len(s.A[0])
	for i, row := range s.A {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidSpec, i, len(row), n)
		}
	}
	switch {
	case len(s.B) != m:
		return fmt.Errorf("%w: %d constraints but len(b)=%d", ErrInvalidSpec, m, len(s.B))
	case len(s.C) != n:
		return fmt.Errorf("%w: %d variables but len(c)=%d", ErrInvalidSpec, n, len(s.C))
	case len(s.Variables) != 0 && len(s.Variables) != n:
		return fmt.Errorf("%w: %d variable names for %d variables", ErrInvalidSpec, len(s.Variables), n)
	case len(s.Constraints) != 0 && len(s.Constraints) != m:
		return fmt.Errorf("%w: %d constraint names for %d constraints", ErrInvalidSpec, len(s.Constraints), m)
	}
	if _, err := verify.ParseForm(s.Form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if _, err := verify.ParseSense(s.Sense); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return nil
}

// Problem converts s into solver input. The rows of A are copied.
func (s *Spec) Problem() (*ipm.Problem, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return ipm.NewProblem(s.A, append([]float64(nil), s.B...), append([]float64(nil), s.C...))
}

// VariableName returns the name of variable j, or "x<j+1>" when unnamed.
func (s *Spec) VariableName(j int) string {
	if j < len(s.Variables) {
		return s.Variables[j]
	}

	return fmt.Sprintf("x%d", j+1)
}

// ConstraintName returns the name of constraint i, or "row<i+1>" when unnamed.
func (s *Spec) ConstraintName(i int) string {
	if i < len(s.Constraints) {
		return s.Constraints[i]
	}

	return fmt.Sprintf("row%d", i+1)
}

// VerifyMode returns the parsed Form and Sense.
func (s *Spec) VerifyMode() (verify.Form, verify.Sense, error) {
	f, err := verify.ParseForm(s.Form)
	if err != nil {
		return 0, 0, err
	}
	se, err := verify.ParseSense(s.Sense)
	if err != nil {
		return 0, 0, err
	}

	return f, se, nil
}
