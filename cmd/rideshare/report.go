// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/d-quinteros/RideshareSolver/ipm"
	"github.com/d-quinteros/RideshareSolver/problem"
	"github.com/d-quinteros/RideshareSolver/verify"
)

// writeReport prints the solution, the objective and its per-variable
// contributions, and how the solve terminated.
func writeReport(out io.Writer, spec *problem.Spec, res *ipm.Result) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "problem:\t%s\n", spec.Name)
	fmt.Fprintf(w, "status:\t%v\n", res.Status)
	fmt.Fprintf(w, "iterations:\t%d\n", res.Iterations)
	fmt.Fprintf(w, "residuals:\tprimal %.3g, dual %.3g, mu %.3g\n", res.PrimalResidual, res.DualResidual, res.Mu)
	fmt.Fprintln(w, "variable\tvalue\tcontribution")
	for j, x := range res.X {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\n", spec.VariableName(j), x, res.Contributions[j])
	}
	fmt.Fprintf(w, "objective:\t%.6f\n", res.Objective)

	return w.Flush()
}

// writeTraceTable prints one row per trace point: iteration, μ and x.
func writeTraceTable(out io.Writer, spec *problem.Spec, trace []ipm.TracePoint) error {
	if len(trace) == 0 {
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	header := []string{"iter", "mu"}
	for j := range trace[0].X {
		header = append(header, spec.VariableName(j))
	}
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")
	for k, tp := range trace {
		fmt.Fprintf(w, "%d\t%.1e\t", k, tp.Mu)
		for _, x := range tp.X {
			fmt.Fprintf(w, "%.6f\t", x)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

// traceFile is the on-disk trajectory consumed by external plotting tools.
type traceFile struct {
	Problem   string           `json:"problem"`
	Variables []string         `json:"variables"`
	Points    []ipm.TracePoint `json:"points"`
}

// writeTraceFile stores the trajectory as YAML at path.
func writeTraceFile(path string, spec *problem.Spec, trace []ipm.TracePoint) error {
	tf := traceFile{Problem: spec.Name, Points: trace}
	if len(trace) > 0 {
		for j := range trace[0].X {
			tf.Variables = append(tf.Variables, spec.VariableName(j))
		}
	}
	data, err := yaml.Marshal(tf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// writeProblem prints the objective and constraints in algebraic form, using
// the relation and direction the verify reference would read them with.
func writeProblem(out io.Writer, spec *problem.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	if spec.Name != "" {
		fmt.Fprintf(w, "# %s\n", spec.Name)
	}
	if spec.Description != "" {
		fmt.Fprintf(w, "# %s\n", spec.Description)
	}
	form, sense, err := spec.VerifyMode()
	if err != nil {
		return err
	}
	rel := "="
	if form == verify.Inequality {
		rel = "<="
	}
	fmt.Fprintf(w, "%s:\t%s\n", sense, linear(spec, spec.C))
	for i, row := range spec.A {
		fmt.Fprintf(w, "%s:\t%s %s %g\n", spec.ConstraintName(i), linear(spec, row), rel, spec.B[i])
	}
	vars := make([]string, len(spec.C))
	for j := range vars {
		vars[j] = spec.VariableName(j)
	}
	fmt.Fprintf(w, "bounds:\t%s >= 0\n", strings.Join(vars, ", "))

	return w.Flush()
}

// linear renders Σ coef_j·var_j, skipping zero coefficients.
func linear(spec *problem.Spec, coef []float64) string {
	var b strings.Builder
	for j, v := range coef {
		if v == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && v < 0:
			b.WriteString("-")
		case b.Len() > 0 && v < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if a := math.Abs(v); a != 1 {
			fmt.Fprintf(&b, "%g·", a)
		}
		b.WriteString(spec.VariableName(j))
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
