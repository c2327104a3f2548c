// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Block assembles a grid of sub-matrices into one Dense.
//
// grid[i][j] is placed at block-row i, block-column j. Every block in a
// block-row must share the same row count, every block in a block-column
// must share the same column count, and every block-row must hold the same
// number of blocks. Blocks are copied; the result never aliases them.
//
// Implementation:
//   - Stage 1: validate the grid shape and derive block-row heights and
//     block-column widths from the first row/column.
//   - Stage 2: allocate the result and copy each block at its offset
//     (flat copy for *Dense blocks, At-based for others).
//
// Errors:
//   - ErrInvalidDimensions (empty grid), ErrNilMatrix (nil block),
//     ErrDimensionMismatch (misaligned heights/widths or ragged grid).
//
// Complexity:
//   - Time O(R*C) for an R×C result, Space O(R*C).
func Block(grid [][]Matrix) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, matrixErrorf(opBlock, ErrInvalidDimensions)
	}
	bRows, bCols := len(grid), len(grid[0])

	heights := make([]int, bRows)
	widths := make([]int, bCols)
	var bi, bj int
	for bi = 0; bi < bRows; bi++ {
		if len(grid[bi]) != bCols {
			return nil, matrixErrorf(opBlock, fmt.Errorf("block-row %d has %d blocks, want %d: %w", bi, len(grid[bi]), bCols, ErrDimensionMismatch))
		}
		for bj = 0; bj < bCols; bj++ {
			blk := grid[bi][bj]
			if err := ValidateNotNil(blk); err != nil {
				return nil, matrixErrorf(opBlock, fmt.Errorf("block (%d,%d): %w", bi, bj, err))
			}
			if bj == 0 {
				heights[bi] = blk.Rows()
			} else if blk.Rows() != heights[bi] {
				return nil, matrixErrorf(opBlock, fmt.Errorf("block (%d,%d) has %d rows, want %d: %w", bi, bj, blk.Rows(), heights[bi], ErrDimensionMismatch))
			}
			if bi == 0 {
				widths[bj] = blk.Cols()
			} else if blk.Cols() != widths[bj] {
				return nil, matrixErrorf(opBlock, fmt.Errorf("block (%d,%d) has %d cols, want %d: %w", bi, bj, blk.Cols(), widths[bj], ErrDimensionMismatch))
			}
		}
	}

	total := func(xs []int) int {
		s := 0
		for _, x := range xs {
			s += x
		}
		return s
	}
	res, err := NewDense(total(heights), total(widths))
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}

	var r0, c0, i, j int
	var v float64
	for bi = 0; bi < bRows; bi++ {
		c0 = 0
		for bj = 0; bj < bCols; bj++ {
			blk := grid[bi][bj]
			h, w := heights[bi], widths[bj]
			if d, ok := blk.(*Dense); ok {
				for i = 0; i < h; i++ {
					copy(res.data[(r0+i)*res.c+c0:(r0+i)*res.c+c0+w], d.data[i*w:(i+1)*w])
				}
			} else {
				for i = 0; i < h; i++ {
					for j = 0; j < w; j++ {
						if v, err = blk.At(i, j); err != nil {
							return nil, matrixErrorf(opBlock, err)
						}
						res.data[(r0+i)*res.c+c0+j] = v
					}
				}
			}
			c0 += w
		}
		r0 += heights[bi]
	}

	return res, nil
}
