package sqrtext_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/sqrtext"
	"github.com/stretchr/testify/require"
)

// approxPrec is the binary precision used for numeric cross-checks.
const approxPrec = 256

// ext is the shared extension of Q used across tests.
var ext = sqrtext.Rational()

// val BUILDS m·√r from rational literals or fails the test.
func val(t *testing.T, m, r string) *sqrtext.Value[*big.Rat] {
	t.Helper()
	v, err := ext.Element(field.MustRat(m), field.MustRat(r))
	require.NoError(t, err)

	return v
}

// rat embeds a rational literal.
func rat(s string) *sqrtext.Value[*big.Rat] {
	return ext.FromBase(field.MustRat(s))
}

// approx returns a float64 view for tolerance-based assertions.
func approx(v *sqrtext.Value[*big.Rat]) float64 {
	f, _ := v.Approx(approxPrec).Float64()
	return f
}
