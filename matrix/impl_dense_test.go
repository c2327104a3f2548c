// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d-quinteros/RideshareSolver/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies Rows() and Cols().
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds checks that accessors return ErrOutOfRange instead of panicking.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange, "Set%v", ij)
	}
}

// TestSetNaNInf checks the finite-only numeric policy.
func TestSetNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0), "rejected writes leave the cell untouched")
}

// TestNewDenseFrom covers the row-literal constructor and its failure modes.
func TestNewDenseFrom(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, Rows2D(t, m))

	_, err := matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
	_, err = matrix.NewDenseFrom([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestIdentityAndDiag(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Rows2D(t, id))

	d, err := matrix.NewDiag([]float64{2, -1})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, -1}}, Rows2D(t, d))

	_, err = matrix.NewDiag(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiag([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, Rows2D(t, z))
}

// TestCloneIndependence ensures Clone and the copy accessors never alias storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, m, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, c, 0, 0))

	raw := m.RawData()
	require.Equal(t, []float64{9, 2, 3, 4}, raw)
	raw[1] = 7
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))
}

func TestStringOutput(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
