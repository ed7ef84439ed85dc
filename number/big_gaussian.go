// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math/big"
)

// BigGaussian is a Gaussian integer with arbitrary-precision parts.
//
// A BigGaussian owns its parts: constructors copy their arguments and
// accessors return copies, so a value can never be changed after creation.
// The zero value is 0+0i and is ready to use.
type BigGaussian struct {
	re, im *big.Int // nil means 0
}

// Canonical BigGaussian constants.
var (
	BigGaussianZero = BigGaussian{}
	BigGaussianOne  = BigGaussianFromInt64(1, 0)
	BigGaussianI    = BigGaussianFromInt64(0, 1)
)

// NewBigGaussian returns re + im·i. Nil parts are read as zero.
func NewBigGaussian(re, im *big.Int) BigGaussian {
	return BigGaussian{re: cloneInt(re), im: cloneInt(im)}
}

// BigGaussianFromInt64 returns re + im·i.
func BigGaussianFromInt64(re, im int64) BigGaussian {
	return BigGaussian{re: big.NewInt(re), im: big.NewInt(im)}
}

// BigGaussianFromGaussian widens an int64 Gaussian.
func BigGaussianFromGaussian(g Gaussian) BigGaussian {
	return BigGaussianFromInt64(g.Real, g.Imag)
}

// Real returns a copy of the real part.
func (g BigGaussian) Real() *big.Int { return new(big.Int).Set(g.real()) }

// Imag returns a copy of the imaginary part.
func (g BigGaussian) Imag() *big.Int { return new(big.Int).Set(g.imag()) }

// Add returns g + h.
func (g BigGaussian) Add(h BigGaussian) BigGaussian {
	return BigGaussian{
		re: new(big.Int).Add(g.real(), h.real()),
		im: new(big.Int).Add(g.imag(), h.imag()),
	}
}

// Sub returns g - h.
func (g BigGaussian) Sub(h BigGaussian) BigGaussian {
	return BigGaussian{
		re: new(big.Int).Sub(g.real(), h.real()),
		im: new(big.Int).Sub(g.imag(), h.imag()),
	}
}

// Mul returns g · h.
func (g BigGaussian) Mul(h BigGaussian) BigGaussian {
	ac := new(big.Int).Mul(g.real(), h.real())
	bd := new(big.Int).Mul(g.imag(), h.imag())
	ad := new(big.Int).Mul(g.real(), h.imag())
	bc := new(big.Int).Mul(g.imag(), h.real())

	return BigGaussian{re: ac.Sub(ac, bd), im: ad.Add(ad, bc)}
}

// Div returns the exact quotient g / h as a Gaussian rational.
func (g BigGaussian) Div(h BigGaussian) (BigComplex, error) {
	if h.IsZero() {
		return BigComplex{}, fmt.Errorf("BigGaussian.Div(%s): %w", h, ErrDivisionByZero)
	}

	return BigComplexFromGaussian(g).Div(BigComplexFromGaussian(h))
}

// Neg returns -g.
func (g BigGaussian) Neg() BigGaussian {
	return BigGaussian{re: new(big.Int).Neg(g.real()), im: new(big.Int).Neg(g.imag())}
}

// Conj returns the complex conjugate.
func (g BigGaussian) Conj() BigGaussian {
	return BigGaussian{re: g.Real(), im: new(big.Int).Neg(g.imag())}
}

// Norm returns re² + im².
func (g BigGaussian) Norm() *big.Int {
	rr := new(big.Int).Mul(g.real(), g.real())
	ii := new(big.Int).Mul(g.imag(), g.imag())

	return rr.Add(rr, ii)
}

// IsZero reports whether g == 0.
func (g BigGaussian) IsZero() bool { return g.real().Sign() == 0 && g.imag().Sign() == 0 }

// Equal reports whether g and h are numerically equal.
func (g BigGaussian) Equal(h BigGaussian) bool {
	return g.real().Cmp(h.real()) == 0 && g.imag().Cmp(h.imag()) == 0
}

// String renders g as "a+bi" or "a-bi".
func (g BigGaussian) String() string {
	im := g.imag()
	if im.Sign() < 0 {
		return g.real().String() + "-" + new(big.Int).Abs(im).String() + "i"
	}

	return g.real().String() + "+" + im.String() + "i"
}

var bigZero = new(big.Int)

func (g BigGaussian) real() *big.Int {
	if g.re == nil {
		return bigZero
	}
	return g.re
}

func (g BigGaussian) imag() *big.Int {
	if g.im == nil {
		return bigZero
	}
	return g.im
}

func cloneInt(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}
