package matrix_test

import (
	"testing"

	"github.com/d-quinteros/RideshareSolver/matrix"
)

// diagDominant builds an n×n strictly diagonally dominant matrix, which LU
// factorizes without hitting a zero pivot.
func diagDominant(b *testing.B, n int) *matrix.Dense {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 1.0 / float64(1+i+j)
			if i == j {
				v = float64(n)
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

func benchmarkSolve(b *testing.B, n int) {
	a := diagDominant(b, n)
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Solve(a, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_23 benchmarks the KKT size of a 10-variable, 3-constraint problem.
func BenchmarkSolve_23(b *testing.B) { benchmarkSolve(b, 23) }

// BenchmarkSolve_100 benchmarks a 100×100 dense solve.
func BenchmarkSolve_100(b *testing.B) { benchmarkSolve(b, 100) }

// BenchmarkBlock_KKT benchmarks assembling a 3×3 block grid of 40×40 blocks.
func BenchmarkBlock_KKT(b *testing.B) {
	blk := diagDominant(b, 40)
	grid := [][]matrix.Matrix{{blk, blk, blk}, {blk, blk, blk}, {blk, blk, blk}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Block(grid); err != nil {
			b.Fatalf("Block failed: %v", err)
		}
	}
}
