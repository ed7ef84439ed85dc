// SPDX-License-Identifier: MIT

package number

import "fmt"

// Gaussian is a Gaussian integer Real + Imag·i with int64 parts.
// Arithmetic wraps on int64 overflow, like the built-in integer types.
type Gaussian struct {
	Real int64
	Imag int64
}

// Canonical Gaussian constants.
var (
	GaussianZero = Gaussian{}
	GaussianOne  = Gaussian{Real: 1}
	GaussianI    = Gaussian{Imag: 1}
)

// NewGaussian returns real + imag·i.
func NewGaussian(real, imag int64) Gaussian {
	return Gaussian{Real: real, Imag: imag}
}

// Add returns g + h.
func (g Gaussian) Add(h Gaussian) Gaussian {
	return Gaussian{Real: g.Real + h.Real, Imag: g.Imag + h.Imag}
}

// Sub returns g - h.
func (g Gaussian) Sub(h Gaussian) Gaussian {
	return Gaussian{Real: g.Real - h.Real, Imag: g.Imag - h.Imag}
}

// Mul returns g · h = (ac - bd) + (ad + bc)i.
func (g Gaussian) Mul(h Gaussian) Gaussian {
	return Gaussian{
		Real: g.Real*h.Real - g.Imag*h.Imag,
		Imag: g.Real*h.Imag + g.Imag*h.Real,
	}
}

// Div returns g / h in the complex plane. Gaussian integers are not closed
// under division, so the quotient is a complex128.
func (g Gaussian) Div(h Gaussian) (complex128, error) {
	if h.IsZero() {
		return 0, fmt.Errorf("Gaussian.Div(%s): %w", h, ErrDivisionByZero)
	}
	den := float64(h.Norm())
	re := float64(g.Real*h.Real+g.Imag*h.Imag) / den
	im := float64(g.Imag*h.Real-g.Real*h.Imag) / den

	return complex(re, im), nil
}

// Neg returns -g.
func (g Gaussian) Neg() Gaussian { return Gaussian{Real: -g.Real, Imag: -g.Imag} }

// Conj returns the complex conjugate Real - Imag·i.
func (g Gaussian) Conj() Gaussian { return Gaussian{Real: g.Real, Imag: -g.Imag} }

// Norm returns the field norm Real² + Imag².
func (g Gaussian) Norm() int64 { return g.Real*g.Real + g.Imag*g.Imag }

// IsZero reports whether g == 0.
func (g Gaussian) IsZero() bool { return g.Real == 0 && g.Imag == 0 }

// Equal reports whether g and h have equal parts.
func (g Gaussian) Equal(h Gaussian) bool { return g == h }

// Complex128 converts g into the built-in complex type.
func (g Gaussian) Complex128() complex128 { return complex(float64(g.Real), float64(g.Imag)) }

// String renders g as "a+bi" or "a-bi".
func (g Gaussian) String() string {
	return fmt.Sprintf("%d%+di", g.Real, g.Imag)
}
