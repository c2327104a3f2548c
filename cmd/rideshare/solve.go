// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/d-quinteros/RideshareSolver/ipm"
	"github.com/d-quinteros/RideshareSolver/problem"
	"github.com/d-quinteros/RideshareSolver/verify"
)

// Flag names; they double as viper keys.
const (
	flagProblem     = "problem"
	flagMu0         = "mu0"
	flagTol         = "tol"
	flagMaxIter     = "max-iter"
	flagKKT         = "kkt"
	flagTrace       = "trace"
	flagTraceOut    = "trace-out"
	flagVerify      = "verify"
	flagVerifyForm  = "verify-form"
	flagVerifySense = "verify-sense"
)

// referenceTol is the simplex degeneracy tolerance.
const referenceTol = 1e-10

type solveOpts struct {
	problemFile string
	opts        ipm.Options
	printTrace  bool
	traceOut    string
	verify      bool
	verifyForm  string
	verifySense string
}

func newSolveCommand(vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the ride-share problem or a problem file",
		Long: `Solve runs the primal-dual interior-point method and prints the solution,
the objective c·x with its per-variable contributions, and the termination
status. --trace prints the (mu, x) trajectory; --trace-out writes it as YAML.
--verify re-solves the problem with the simplex method and fails when the
objectives differ by more than 10×tol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bound here, not at construction, so sibling commands sharing
			// flag names do not steal the keys.
			if err := vip.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			o, err := readSolveOpts(vip)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runSolve(ctx, cmd, o)
		},
	}

	def := ipm.DefaultOptions()
	f := cmd.Flags()
	f.StringP(flagProblem, "p", "", "problem file (YAML or JSON); the built-in ride-share problem when empty")
	f.Float64(flagMu0, def.Mu0, "initial barrier parameter")
	f.Float64(flagTol, def.Tol, "convergence tolerance on residual norms and mu")
	f.Int(flagMaxIter, def.MaxIter, "maximum number of Newton steps")
	f.String(flagKKT, def.KKT.String(), "KKT backend: direct or reduced")
	f.Bool(flagTrace, false, "print the (mu, x) trajectory")
	f.String(flagTraceOut, "", "write the trajectory as YAML to this file")
	f.Bool(flagVerify, false, "cross-check the objective with a simplex reference")
	f.String(flagVerifyForm, "", "override the problem's verify form: equality or inequality")
	f.String(flagVerifySense, "", "override the problem's verify sense: minimize or maximize")

	return cmd
}

// readSolveOpts resolves flags, environment and config file through vip.
func readSolveOpts(vip *viper.Viper) (*solveOpts, error) {
	kkt, err := ipm.ParseKKTMode(vip.GetString(flagKKT))
	if err != nil {
		return nil, err
	}
	o := &solveOpts{
		problemFile: vip.GetString(flagProblem),
		opts: ipm.Options{
			Mu0:     vip.GetFloat64(flagMu0),
			Tol:     vip.GetFloat64(flagTol),
			MaxIter: vip.GetInt(flagMaxIter),
			KKT:     kkt,
		},
		printTrace:  vip.GetBool(flagTrace),
		traceOut:    vip.GetString(flagTraceOut),
		verify:      vip.GetBool(flagVerify),
		verifyForm:  vip.GetString(flagVerifyForm),
		verifySense: vip.GetString(flagVerifySense),
	}
	o.opts.Trace = o.printTrace || o.traceOut != ""
	if err = o.opts.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// loadSpec returns the problem file's spec, or the built-in scenario.
func loadSpec(path string) (*problem.Spec, error) {
	if path == "" {
		return problem.RideShare(), nil
	}

	return problem.Load(path)
}

func runSolve(ctx context.Context, cmd *cobra.Command, o *solveOpts) error {
	spec, err := loadSpec(o.problemFile)
	if err != nil {
		return err
	}
	p, err := spec.Problem()
	if err != nil {
		return err
	}

	klog.V(2).InfoS("solving", "problem", spec.Name, "kkt", o.opts.KKT, "mu0", o.opts.Mu0, "tol", o.opts.Tol, "maxIter", o.opts.MaxIter)
	res, err := ipm.SolveContext(ctx, p, &o.opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = writeReport(out, spec, res); err != nil {
		return err
	}
	if o.printTrace {
		if err = writeTraceTable(out, spec, res.Trace); err != nil {
			return err
		}
	}
	if o.traceOut != "" {
		if err = writeTraceFile(o.traceOut, spec, res.Trace); err != nil {
			return err
		}
		fmt.Fprintf(out, "trace written to %s\n", o.traceOut)
	}
	if o.verify {
		if err = crossCheck(out, spec, p, res, o); err != nil {
			return err
		}
	}

	return res.Err()
}

func crossCheck(out io.Writer, spec *problem.Spec, p *ipm.Problem, res *ipm.Result, o *solveOpts) error {
	form, sense, err := spec.VerifyMode()
	if err != nil {
		return err
	}
	if o.verifyForm != "" {
		if form, err = verify.ParseForm(o.verifyForm); err != nil {
			return err
		}
	}
	if o.verifySense != "" {
		if sense, err = verify.ParseSense(o.verifySense); err != nil {
			return err
		}
	}

	ref, err := verify.Reference(p, form, sense, referenceTol)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "simplex reference (%v, %v): objective %.6f\n", form, sense, ref.Objective)
	if err = verify.CrossCheck(res, ref, o.opts.Tol*10); err != nil {
		return err
	}
	fmt.Fprintln(out, "cross-check: ok")

	return nil
}
