package sqrtext_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/sqrtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd covers equal radicands, square-ratio radicands and the failure mode.
func TestAdd(t *testing.T) {
	sum, err := val(t, "1", "3").Add(val(t, "1/2", "3"))
	require.NoError(t, err)
	assert.Equal(t, "3/2 * sqrt(3)", sum.String())

	// √8 + √2 = 3√2
	sum, err = val(t, "1", "8").Add(val(t, "1", "2"))
	require.NoError(t, err)
	assert.Equal(t, "3 * sqrt(2)", sum.String())

	// √2 - √2 = 0
	diff, err := val(t, "1", "2").Sub(val(t, "1", "2"))
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	// zero is neutral, whatever the radicand of the other side
	sum, err = ext.Zero().Add(val(t, "2", "5"))
	require.NoError(t, err)
	assert.Equal(t, "2 * sqrt(5)", sum.String())

	_, err = val(t, "1", "2").Add(val(t, "1", "3"))
	require.ErrorIs(t, err, sqrtext.ErrIncompatibleRadical)

	_, err = rat("1").Add(val(t, "1", "2"))
	require.ErrorIs(t, err, sqrtext.ErrIncompatibleRadical)
}

// TestMul covers folding of equal radicands and products of distinct ones.
func TestMul(t *testing.T) {
	x := val(t, "1/2", "3")
	assert.Equal(t, "3/4", x.Mul(x).String())
	assert.Equal(t, "sqrt(6)", val(t, "1", "2").Mul(val(t, "1", "3")).String())
	assert.Equal(t, "4", val(t, "1", "2").Mul(val(t, "1", "8")).String())
	assert.True(t, x.Mul(ext.Zero()).IsZero())
	assert.Equal(t, "-1/2 * sqrt(3)", x.Mul(rat("-1")).String())
}

// TestNegInv covers negation and rationalized inversion.
func TestNegInv(t *testing.T) {
	x := val(t, "2", "3")
	assert.Equal(t, "-2 * sqrt(3)", x.Neg().String())
	assert.True(t, ext.Zero().Neg().IsZero())

	inv, err := x.Inv()
	require.NoError(t, err)
	assert.Equal(t, "1/6 * sqrt(3)", inv.String())
	assert.True(t, x.Mul(inv).IsOne())

	_, err = ext.Zero().Inv()
	require.ErrorIs(t, err, field.ErrDivisionByZero)

	q, err := rat("1").Quo(val(t, "1", "2"))
	require.NoError(t, err)
	assert.Equal(t, "1/2 * sqrt(2)", q.String())
}

// TestPow covers the supported exponent shapes and the rejected ones.
func TestPow(t *testing.T) {
	cases := []struct {
		name string
		v    *sqrtext.Value[*big.Rat]
		e    string
		want string
	}{
		{"cube of sqrt2", val(t, "1", "2"), "3", "2 * sqrt(2)"},
		{"square of sqrt2", val(t, "1", "2"), "2", "2"},
		{"inverse of sqrt2", val(t, "1", "2"), "-1", "1/2 * sqrt(2)"},
		{"zeroth power", val(t, "3", "5"), "0", "1"},
		{"zero squared", ext.Zero(), "2", "0"},
		{"zero to zero", ext.Zero(), "0", "1"},
		{"half of 9/4", rat("9/4"), "1/2", "3/2"},
		{"three halves of 2", rat("2"), "3/2", "2 * sqrt(2)"},
		{"minus half of 2", rat("2"), "-1/2", "1/2 * sqrt(2)"},
		{"half of zero", ext.Zero(), "1/2", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.v.Pow(field.MustRat(tc.e))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestPow_Unsupported checks every failure branch of Pow.
func TestPow_Unsupported(t *testing.T) {
	_, err := val(t, "1", "2").Pow(big.NewRat(1, 2))
	require.ErrorIs(t, err, sqrtext.ErrUnsupportedPower)

	_, err = rat("8").Pow(big.NewRat(1, 3))
	require.ErrorIs(t, err, sqrtext.ErrUnsupportedPower)

	_, err = rat("-4").Pow(big.NewRat(1, 2))
	require.ErrorIs(t, err, field.ErrNegativeRoot)

	_, err = ext.Zero().Pow(big.NewRat(-1, 1))
	require.ErrorIs(t, err, field.ErrDivisionByZero)

	_, err = ext.Zero().Pow(big.NewRat(-1, 2))
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}

// TestSqrt covers the restricted square root.
func TestSqrt(t *testing.T) {
	r, err := rat("2/3").Sqrt()
	require.NoError(t, err)
	assert.Equal(t, "1/3 * sqrt(6)", r.String())
	assert.Equal(t, "2/3", r.Mul(r).String())

	r, err = rat("16/9").Sqrt()
	require.NoError(t, err)
	assert.Equal(t, "4/3", r.String())

	r, err = ext.Zero().Sqrt()
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	_, err = val(t, "1", "2").Sqrt()
	require.ErrorIs(t, err, sqrtext.ErrUnsupportedRoot)

	_, err = rat("-1").Sqrt()
	require.ErrorIs(t, err, field.ErrNegativeRoot)
}

// TestFieldLaws checks the field identities on radically compatible samples.
func TestFieldLaws(t *testing.T) {
	// all samples share the radical √2 (up to square factors) or are rational
	family := []*sqrtext.Value[*big.Rat]{
		val(t, "1", "2"), val(t, "-3/4", "2"), val(t, "1/5", "8"), val(t, "7", "1/2"),
	}
	for _, a := range family {
		neg, err := a.Add(a.Neg())
		require.NoError(t, err)
		assert.True(t, neg.IsZero(), "a + (-a) = 0 for %s", a)

		inv, err := a.Inv()
		require.NoError(t, err)
		assert.True(t, a.Mul(inv).Equal(ext.One()), "a · a⁻¹ = 1 for %s", a)

		for _, b := range family {
			ab, err := a.Add(b)
			require.NoError(t, err)
			ba, err := b.Add(a)
			require.NoError(t, err)
			assert.True(t, ab.Equal(ba), "a+b = b+a")
			assert.True(t, a.Mul(b).Equal(b.Mul(a)), "ab = ba")

			for _, c := range family {
				l, err := ab.Add(c)
				require.NoError(t, err)
				bc, err := b.Add(c)
				require.NoError(t, err)
				r, err := a.Add(bc)
				require.NoError(t, err)
				assert.True(t, l.Equal(r), "(a+b)+c = a+(b+c)")
				assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "(ab)c = a(bc)")
			}
		}
	}
}
