package eigenspace_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenspace/eigenspace"
	"github.com/katalvlaran/eigenspace/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := eigenspace.NewRational(0, rats("1/2"))
	require.ErrorIs(t, err, eigenspace.ErrBadDimension)

	_, err = eigenspace.NewRational(-3, rats("1/2"))
	require.ErrorIs(t, err, eigenspace.ErrBadDimension)

	_, err = eigenspace.NewRational(2, nil)
	require.ErrorIs(t, err, eigenspace.ErrEmptyTable)

	// dimension is checked before the table
	_, err = eigenspace.NewRational(0, nil)
	require.ErrorIs(t, err, eigenspace.ErrBadDimension)

	es, err := eigenspace.NewRational(4, rats("1/2", "-1/3"))
	require.NoError(t, err)
	assert.Equal(t, 4, es.Dimension())
	assert.Equal(t, 2, es.Len())
}

func TestNew_CopiesTable(t *testing.T) {
	in := rats("1/2", "1/3")
	es, err := eigenspace.New[*big.Rat](2, in, field.Q)
	require.NoError(t, err)

	in[0] = big.NewRat(9, 1)
	c, err := es.Cosine(0)
	require.NoError(t, err)
	assert.Equal(t, "1/2", c.RatString())
}

func TestCosine_Range(t *testing.T) {
	es := rational(t, 2, "1/2", "1/3")

	c, err := es.Cosine(1)
	require.NoError(t, err)
	assert.Equal(t, "1/3", c.String())

	_, err = es.Cosine(2)
	require.ErrorIs(t, err, eigenspace.ErrIndexOutOfRange)
	_, err = es.Cosine(-1)
	require.ErrorIs(t, err, eigenspace.ErrIndexOutOfRange)
}

func TestWithStrictCosines(t *testing.T) {
	_, err := eigenspace.NewRational(2, rats("1/2", "3/2"), eigenspace.WithStrictCosines())
	require.ErrorIs(t, err, eigenspace.ErrCosineRange)

	_, err = eigenspace.NewRational(2, rats("-5/4"), eigenspace.WithStrictCosines())
	require.ErrorIs(t, err, eigenspace.ErrCosineRange)

	_, err = eigenspace.NewRational(2, rats("1", "-1", "0"), eigenspace.WithStrictCosines())
	require.NoError(t, err)

	// without the option the table is accepted and fails during realization
	es, err := eigenspace.NewRational(2, rats("3/2"))
	require.NoError(t, err)
	_, err = es.Vectors(eigenspace.PairIndex(2))
	require.ErrorIs(t, err, eigenspace.ErrNormExceedsUnit)
}

func TestPairIndex(t *testing.T) {
	assert.Nil(t, eigenspace.PairIndex(0))
	assert.Equal(t, [][]int{{}}, eigenspace.PairIndex(1))
	assert.Equal(t, [][]int{{}, {0}, {1, 2}, {3, 4, 5}}, eigenspace.PairIndex(4))

	for n := 0; n < 7; n++ {
		idx := eigenspace.PairIndex(n)
		count := 0
		for _, row := range idx {
			count += len(row)
		}
		assert.Equal(t, eigenspace.PairCount(n), count, "n=%d", n)
	}
	assert.Equal(t, 0, eigenspace.PairCount(1))
	assert.Equal(t, 10, eigenspace.PairCount(5))
}
