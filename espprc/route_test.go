package espprc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pricing/espprc"
	"github.com/katalvlaran/pricing/instance"
)

func TestValidateRoute(t *testing.T) {
	tests := []struct {
		name  string
		route []int
		n     int
		want  error
	}{
		{"empty route", []int{0}, 3, nil},
		{"round trip", []int{0, 2, 0}, 3, nil},
		{"full tour", []int{0, 2, 1, 0}, 3, nil},
		{"nil", nil, 3, espprc.ErrInvalidRoute},
		{"depot twice", []int{0, 0}, 3, espprc.ErrInvalidRoute},
		{"open", []int{0, 1, 2}, 3, espprc.ErrInvalidRoute},
		{"not from depot", []int{1, 2, 0}, 3, espprc.ErrInvalidRoute},
		{"inner depot", []int{0, 1, 0, 2, 0}, 3, espprc.ErrInvalidRoute},
		{"repeat", []int{0, 1, 2, 1, 0}, 3, espprc.ErrInvalidRoute},
		{"out of range", []int{0, 3, 0}, 3, espprc.ErrInvalidRoute},
		{"negative", []int{0, -1, 0}, 3, espprc.ErrInvalidRoute},
		{"no vertices", []int{0}, 0, espprc.ErrEmptyInstance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := espprc.ValidateRoute(tc.route, tc.n)
			if tc.want == nil {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestEvaluate(t *testing.T) {
	in, err := instance.NewFromRows(
		[][]float64{
			{0, 2, 3, 4},
			{2, 0, 1, 5},
			{3, 1, 0, 6},
			{4, 5, 6, 0},
		},
		[][]float64{
			{0, -1, -2, -3},
			{1, 0, -4, 0},
			{2, 0.5, 0, 0},
			{-1, 0, 0, 0},
		},
	)
	require.NoError(t, err)

	// 3 = 11b, 2 = 10b: resource 0 once, resource 1 twice.
	cost, length, load, err := espprc.Evaluate(in, []int{0, 3, 2, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, -3.0+0+2, cost)
	assert.Equal(t, 4.0+6+3, length)
	assert.Equal(t, []int{1, 2}, load)

	cost, length, load, err = espprc.Evaluate(in, []int{0}, 2)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Zero(t, length)
	assert.Equal(t, []int{0, 0}, load)

	_, _, _, err = espprc.Evaluate(in, []int{0, 1, 1, 0}, 2)
	assert.ErrorIs(t, err, espprc.ErrInvalidRoute)

	_, _, _, err = espprc.Evaluate(in, []int{0, 1, 0}, 3)
	assert.ErrorIs(t, err, espprc.ErrBadResourceCount)

	_, _, _, err = espprc.Evaluate(nil, []int{0}, 0)
	assert.ErrorIs(t, err, espprc.ErrNilOracle)
}

func TestFeasible(t *testing.T) {
	in := twoVertex(t)

	ok, err := espprc.Feasible(in, []int{0, 1, 0}, 1, 1, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = espprc.Feasible(in, []int{0, 1, 0}, 1, 1, 9.5)
	require.NoError(t, err)
	assert.False(t, ok, "too long")

	ok, err = espprc.Feasible(in, []int{0, 1, 0}, 1, 0, 10)
	require.NoError(t, err)
	assert.False(t, ok, "over capacity")

	ok, err = espprc.Feasible(in, []int{0}, 1, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "the empty route is always feasible")

	_, err = espprc.Feasible(in, []int{0, 2, 0}, 1, 1, 10)
	assert.ErrorIs(t, err, espprc.ErrInvalidRoute)
}
