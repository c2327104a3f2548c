package matrix_test

import (
	"fmt"

	"github.com/d-quinteros/RideshareSolver/matrix"
)

// ExampleBlock assembles [[A, I], [0, D]] from four 2×2 blocks.
func ExampleBlock() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewIdentity(2)
	z, _ := matrix.NewZeros(2, 2)
	d, _ := matrix.NewDiag([]float64{7, 8})

	k, err := matrix.Block([][]matrix.Matrix{
		{a, id},
		{z, d},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(k)
	// Output:
	// [1, 2, 1, 0]
	// [3, 4, 0, 1]
	// [0, 0, 7, 0]
	// [0, 0, 0, 8]
}

// ExampleSolve solves a system whose leading entry is zero, which needs a
// row exchange.
func ExampleSolve() {
	a, _ := matrix.NewDenseFrom([][]float64{{0, 2}, {3, 1}})
	x, err := matrix.Solve(a, []float64{4, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x)
	// Output:
	// [1 2]
}
