// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewSquare(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewSquare_FillKeepsZeroDiagonal(t *testing.T) {
	m, err := matrix.NewSquare(3, math.Inf(1))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := m.At(i, j)
			if i == j {
				assert.Equal(t, 0.0, v)
			} else {
				assert.True(t, math.IsInf(v, 1))
			}
		}
	}
	assert.NoError(t, matrix.ValidateDistance(m))
}

func TestClone_IsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, m.Set(0, 1, 99))
	v, _ := c.At(0, 1)
	assert.Equal(t, 1.0, v)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestToRowsAndRow(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 2}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {3, 0}}, m.ToRows())
	r, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0}, r)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[0, 2]\n[3, 0]\n", m.String())
}

func TestValidateSymmetric(t *testing.T) {
	inf := math.Inf(1)
	sym, _ := matrix.FromRows([][]float64{{0, inf, 2}, {inf, 0, 3}, {2, 3, 0}})
	assert.NoError(t, matrix.ValidateSymmetric(sym, 1e-9))

	asym, _ := matrix.FromRows([][]float64{{0, 1}, {2, 0}})
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-9), matrix.ErrAsymmetry)

	rect, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateDistance(t *testing.T) {
	neg, _ := matrix.FromRows([][]float64{{0, -1}, {-1, 0}})
	assert.ErrorIs(t, matrix.ValidateDistance(neg), matrix.ErrNegative)

	nan, _ := matrix.FromRows([][]float64{{0, math.NaN()}, {1, 0}})
	assert.ErrorIs(t, matrix.ValidateDistance(nan), matrix.ErrNaN)

	diag, _ := matrix.FromRows([][]float64{{1, 1}, {1, 0}})
	assert.ErrorIs(t, matrix.ValidateDistance(diag), matrix.ErrNonZeroDiagonal)
}
