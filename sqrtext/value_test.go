package sqrtext_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/sqrtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks FromBase followed by ToBase returns the input.
func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-7/3", "22/7", "1000000000000000000001/3"} {
		x := field.MustRat(s)
		back, err := ext.FromBase(x).ToBase()
		require.NoError(t, err)
		assert.Equal(t, x.RatString(), back.RatString(), s)
	}
}

// TestToBase_Radical ensures values with a radical do not convert.
func TestToBase_Radical(t *testing.T) {
	_, err := val(t, "1", "2").ToBase()
	require.ErrorIs(t, err, sqrtext.ErrNotRational)
}

// TestCombine_Folding verifies the constructor invariants.
func TestCombine_Folding(t *testing.T) {
	// perfect-square radicand folds into the mantissa
	v := val(t, "3", "9/4")
	assert.True(t, v.IsRational())
	assert.Equal(t, "9/2", v.Mantissa().RatString())
	assert.Equal(t, "1", v.Radicand().RatString())

	// zero mantissa or zero radicand collapse to the canonical zero
	for _, z := range []*sqrtext.Value[*big.Rat]{val(t, "0", "5"), val(t, "5", "0")} {
		assert.True(t, z.IsZero())
		assert.Equal(t, "0", z.Mantissa().RatString())
		assert.Equal(t, "0", z.Radicand().RatString())
	}

	// negative radicands are rejected
	_, err := ext.Element(big.NewRat(1, 1), big.NewRat(-2, 1))
	require.ErrorIs(t, err, sqrtext.ErrNegativeRadicand)
}

// TestExtension_Gens checks the generator surface of the parent structure.
func TestExtension_Gens(t *testing.T) {
	gens := ext.Gens()
	require.Len(t, gens, 1)
	assert.True(t, gens[0].IsOne())
	assert.True(t, ext.IsOne(ext.One()))
	assert.True(t, ext.IsZero(ext.Zero()))
	assert.Equal(t, "3/5", ext.FromRat(big.NewRat(3, 5)).String())
}
