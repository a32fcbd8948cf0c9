package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigenspace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force fallback paths.
type hide struct{ matrix.Matrix }

// TestMul_FastAndFallback checks that both paths agree on a known product.
func TestMul_FastAndFallback(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	require.NoError(t, err)
	want, err := matrix.FromRows([][]float64{{58, 64}, {139, 154}})
	require.NoError(t, err)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	for _, got := range []matrix.Matrix{fast, slow} {
		ok, err := matrix.AllClose(got, want, 0, 0)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose checks shape swap and element mapping on both paths.
func TestTranspose(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	for _, in := range []matrix.Matrix{a, hide{a}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		require.Equal(t, 3, tr.Rows())
		require.Equal(t, 2, tr.Cols())
		v, err := tr.At(2, 1)
		require.NoError(t, err)
		assert.Equal(t, 6.0, v)
	}
}

// TestGram checks M·Mᵀ for the planar hexagon-triangle configuration.
func TestGram(t *testing.T) {
	h := math.Sqrt(3) / 2
	m, err := matrix.FromRows([][]float64{{1, 0}, {0.5, h}, {-0.5, h}})
	require.NoError(t, err)
	want, err := matrix.FromRows([][]float64{{1, 0.5, -0.5}, {0.5, 1, 0.5}, {-0.5, 0.5, 1}})
	require.NoError(t, err)

	g, err := matrix.Gram(m)
	require.NoError(t, err)
	ok, err := matrix.AllClose(g, want, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	d, err := matrix.MaxAbsDiff(g, want)
	require.NoError(t, err)
	assert.Less(t, d, 1e-12)
}

// TestAllClose_Validation covers tolerance and shape validation.
func TestAllClose_Validation(t *testing.T) {
	a, _ := matrix.NewDense(1, 1)
	b, _ := matrix.NewDense(1, 2)

	_, err := matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, b, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MaxAbsDiff(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_ = b.Set(0, 1, 1)
	c, _ := matrix.NewDense(1, 2)
	ok, err := matrix.AllClose(c, b, -0.1, -0.5) // negative tolerances are normalized
	require.NoError(t, err)
	assert.False(t, ok)
}
