package field_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubQuo covers the derived helpers.
func TestSubQuo(t *testing.T) {
	d, err := field.Sub[*big.Rat](field.Q, big.NewRat(1, 1), big.NewRat(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "2/3", d.RatString())

	q, err := field.Quo[*big.Rat](field.Q, big.NewRat(1, 2), big.NewRat(3, 4))
	require.NoError(t, err)
	assert.Equal(t, "2/3", q.RatString())

	_, err = field.Quo[*big.Rat](field.Q, big.NewRat(1, 2), field.Q.Zero())
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}

// TestPow covers positive, zero and negative exponents.
func TestPow(t *testing.T) {
	cases := []struct {
		base string
		k    int64
		want string
	}{
		{"2/3", 0, "1"},
		{"2/3", 1, "2/3"},
		{"2/3", 3, "8/27"},
		{"2/3", -2, "9/4"},
		{"0", 0, "1"},
		{"0", 5, "0"},
	}
	for _, tc := range cases {
		got, err := field.Pow[*big.Rat](field.Q, field.MustRat(tc.base), tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.RatString(), "%s^%d", tc.base, tc.k)
	}

	_, err := field.Pow[*big.Rat](field.Q, field.Q.Zero(), -1)
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}
