// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// BigInteger is the ring of arbitrary-precision integers with exact decimal
// quotients. Non-terminating quotients are rounded to
// decimal.DivisionPrecision digits.
//
// A nil *big.Int argument is read as zero.
type BigInteger struct{}

var (
	_ Field[*big.Int, decimal.Decimal] = BigInteger{}
	_ Cloner[*big.Int]                 = BigInteger{}
)

func (BigInteger) Zero() *big.Int { return new(big.Int) }
func (BigInteger) One() *big.Int  { return big.NewInt(1) }

func (BigInteger) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(orZero(a), orZero(b)) }
func (BigInteger) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(orZero(a), orZero(b)) }
func (BigInteger) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(orZero(a), orZero(b)) }
func (BigInteger) Neg(e *big.Int) *big.Int    { return new(big.Int).Neg(orZero(e)) }

// Clone returns a fresh copy of e; nil becomes a fresh zero.
func (BigInteger) Clone(e *big.Int) *big.Int { return new(big.Int).Set(orZero(e)) }

// Equal compares by value.
func (BigInteger) Equal(a, b *big.Int) bool { return orZero(a).Cmp(orZero(b)) == 0 }

// Div returns a / b as a decimal.
func (BigInteger) Div(a, b *big.Int) (decimal.Decimal, error) {
	if orZero(b).Sign() == 0 {
		return decimal.Zero, fmt.Errorf("BigInteger.Div(%s, 0): %w", orZero(a), ErrDivisionByZero)
	}
	num := decimal.NewFromBigInt(orZero(a), 0)
	den := decimal.NewFromBigInt(orZero(b), 0)

	return num.Div(den), nil
}

var zeroInt = new(big.Int)

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return zeroInt
	}
	return x
}
