package ipm_test

import (
	"fmt"

	"github.com/d-quinteros/RideshareSolver/ipm"
)

// ExampleSolve allocates 20 vehicles across three classes under a 1000-unit
// budget. The constraints pin the allocation to (20, 0, 0).
//
// Scenario:
//
//	A = [[50, 30, 10],   (cost per vehicle of each class)
//	     [ 1,  1,  1]]   (one seat per vehicle)
//	b = [1000, 20]
//	c = [40, 20, 5]      (riders served per vehicle)
//
// Complexity: O((2n+m)³) per iteration in the default direct mode.
func ExampleSolve() {
	p, err := ipm.NewProblem(
		[][]float64{{50, 30, 10}, {1, 1, 1}},
		[]float64{1000, 20},
		[]float64{40, 20, 5},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := ipm.Solve(p, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("status=%v\n", res.Status)
	fmt.Printf("x=[%.4f %.4f %.4f]\n", res.X[0], res.X[1], res.X[2])
	fmt.Printf("objective=%.2f\n", res.Objective)
	// Output:
	// status=converged
	// x=[20.0000 0.0000 0.0000]
	// objective=800.00
}

// ExampleSolve_trace records the barrier schedule alongside each iterate.
func ExampleSolve_trace() {
	p, _ := ipm.NewProblem(
		[][]float64{{1, 2, 1, 0}, {3, 1, 0, 1}},
		[]float64{4, 6},
		[]float64{-1, -1, 0, 0},
	)
	opts := ipm.DefaultOptions()
	opts.Trace = true

	res, err := ipm.Solve(p, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("first mu=%g, entries=%d, objective=%.4f\n",
		res.Trace[0].Mu, len(res.Trace), res.Objective)
	// Output:
	// first mu=1, entries=8, objective=-2.8000
}
