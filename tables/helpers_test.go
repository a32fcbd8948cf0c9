package tables_test

import (
	"math/big"

	"github.com/katalvlaran/eigenspace/sqrtext"
)

type sqrtValue = sqrtext.Value[*big.Rat]
