// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math/big"
)

// BigComplex is a Gaussian rational: a complex number with *big.Rat parts.
// It is the field of fractions of BigGaussian.
//
// Like BigGaussian it copies on the way in and out; the zero value is 0+0i.
type BigComplex struct {
	re, im *big.Rat // nil means 0
}

// Canonical BigComplex constants.
var (
	BigComplexZero = BigComplex{}
	BigComplexOne  = NewBigComplex(big.NewRat(1, 1), nil)
)

// NewBigComplex returns re + im·i. Nil parts are read as zero.
func NewBigComplex(re, im *big.Rat) BigComplex {
	return BigComplex{re: cloneRat(re), im: cloneRat(im)}
}

// BigComplexFromGaussian embeds a Gaussian integer into the rationals.
func BigComplexFromGaussian(g BigGaussian) BigComplex {
	return BigComplex{
		re: new(big.Rat).SetInt(g.real()),
		im: new(big.Rat).SetInt(g.imag()),
	}
}

// Real returns a copy of the real part.
func (z BigComplex) Real() *big.Rat { return new(big.Rat).Set(z.real()) }

// Imag returns a copy of the imaginary part.
func (z BigComplex) Imag() *big.Rat { return new(big.Rat).Set(z.imag()) }

// Add returns z + w.
func (z BigComplex) Add(w BigComplex) BigComplex {
	return BigComplex{
		re: new(big.Rat).Add(z.real(), w.real()),
		im: new(big.Rat).Add(z.imag(), w.imag()),
	}
}

// Sub returns z - w.
func (z BigComplex) Sub(w BigComplex) BigComplex {
	return BigComplex{
		re: new(big.Rat).Sub(z.real(), w.real()),
		im: new(big.Rat).Sub(z.imag(), w.imag()),
	}
}

// Mul returns z · w.
func (z BigComplex) Mul(w BigComplex) BigComplex {
	ac := new(big.Rat).Mul(z.real(), w.real())
	bd := new(big.Rat).Mul(z.imag(), w.imag())
	ad := new(big.Rat).Mul(z.real(), w.imag())
	bc := new(big.Rat).Mul(z.imag(), w.real())

	return BigComplex{re: ac.Sub(ac, bd), im: ad.Add(ad, bc)}
}

// Div returns z / w = ((ac + bd) + (bc - ad)i) / (c² + d²).
func (z BigComplex) Div(w BigComplex) (BigComplex, error) {
	if w.IsZero() {
		return BigComplex{}, fmt.Errorf("BigComplex.Div(%s): %w", w, ErrDivisionByZero)
	}
	a, b, c, d := z.real(), z.imag(), w.real(), w.imag()

	den := new(big.Rat).Mul(c, c)
	den.Add(den, new(big.Rat).Mul(d, d))

	re := new(big.Rat).Mul(a, c)
	re.Add(re, new(big.Rat).Mul(b, d))
	re.Quo(re, den)

	im := new(big.Rat).Mul(b, c)
	im.Sub(im, new(big.Rat).Mul(a, d))
	im.Quo(im, den)

	return BigComplex{re: re, im: im}, nil
}

// Neg returns -z.
func (z BigComplex) Neg() BigComplex {
	return BigComplex{re: new(big.Rat).Neg(z.real()), im: new(big.Rat).Neg(z.imag())}
}

// Conj returns the complex conjugate.
func (z BigComplex) Conj() BigComplex {
	return BigComplex{re: z.Real(), im: new(big.Rat).Neg(z.imag())}
}

// IsZero reports whether z == 0.
func (z BigComplex) IsZero() bool { return z.real().Sign() == 0 && z.imag().Sign() == 0 }

// IsGaussian reports whether both parts are integers.
func (z BigComplex) IsGaussian() bool { return z.real().IsInt() && z.imag().IsInt() }

// Equal reports whether z and w are numerically equal.
func (z BigComplex) Equal(w BigComplex) bool {
	return z.real().Cmp(w.real()) == 0 && z.imag().Cmp(w.imag()) == 0
}

// String renders z as "a+bi" with parts in lowest terms ("1/2-3/4i").
func (z BigComplex) String() string {
	im := z.imag()
	if im.Sign() < 0 {
		return z.real().RatString() + "-" + new(big.Rat).Abs(im).RatString() + "i"
	}

	return z.real().RatString() + "+" + im.RatString() + "i"
}

var ratZero = new(big.Rat)

func (z BigComplex) real() *big.Rat {
	if z.re == nil {
		return ratZero
	}
	return z.re
}

func (z BigComplex) imag() *big.Rat {
	if z.im == nil {
		return ratZero
	}
	return z.im
}

func cloneRat(x *big.Rat) *big.Rat {
	if x == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(x)
}
