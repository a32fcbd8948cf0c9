package eigenspace_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenspace/eigenspace"
	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/sqrtext"
	"github.com/stretchr/testify/require"
)

// approxPrec is the precision used for float cross-checks.
const approxPrec = 128

type value = *sqrtext.Value[*big.Rat]

// rats parses rational literals.
func rats(ss ...string) []*big.Rat {
	out := make([]*big.Rat, len(ss))
	for i, s := range ss {
		out[i] = field.MustRat(s)
	}

	return out
}

// rational builds a Q(√r) engine or fails the test.
func rational(t *testing.T, dim int, cosines ...string) *eigenspace.Rational {
	t.Helper()
	es, err := eigenspace.NewRational(dim, rats(cosines...))
	require.NoError(t, err)

	return es
}

// rowStrings renders row i of m with the field's formatting.
func rowStrings[E any](m *eigenspace.Matrix[E], i int) []string {
	row := m.Row(i)
	out := make([]string, len(row))
	for k, x := range row {
		out[k] = m.Field().Format(x)
	}

	return out
}

// elem builds m·√r in the rational extension.
func elem(t *testing.T, m, r string) value {
	t.Helper()
	v, err := sqrtext.Rational().Element(field.MustRat(m), field.MustRat(r))
	require.NoError(t, err)

	return v
}
