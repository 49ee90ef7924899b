package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pricing/matrix"
)

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, -3.5))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -3.5, v)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange, "Set%v", ij)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	rows[2][1] = 99
	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "input rows are copied")

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
