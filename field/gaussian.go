// SPDX-License-Identifier: MIT

package field

import "github.com/katalvlaran/lvmath/number"

// Gaussian is the ring of int64 Gaussian integers with complex128 quotients.
type Gaussian struct{}

var _ Field[number.Gaussian, complex128] = Gaussian{}

func (Gaussian) Zero() number.Gaussian                    { return number.GaussianZero }
func (Gaussian) One() number.Gaussian                     { return number.GaussianOne }
func (Gaussian) Add(a, b number.Gaussian) number.Gaussian { return a.Add(b) }
func (Gaussian) Sub(a, b number.Gaussian) number.Gaussian { return a.Sub(b) }
func (Gaussian) Mul(a, b number.Gaussian) number.Gaussian { return a.Mul(b) }
func (Gaussian) Neg(e number.Gaussian) number.Gaussian    { return e.Neg() }
func (Gaussian) Equal(a, b number.Gaussian) bool          { return a.Equal(b) }

func (Gaussian) Div(a, b number.Gaussian) (complex128, error) { return a.Div(b) }

// BigGaussian is the ring of arbitrary-precision Gaussian integers; its
// quotients are Gaussian rationals.
type BigGaussian struct{}

var _ Field[number.BigGaussian, number.BigComplex] = BigGaussian{}

func (BigGaussian) Zero() number.BigGaussian { return number.BigGaussianZero }
func (BigGaussian) One() number.BigGaussian  { return number.BigGaussianOne }

func (BigGaussian) Add(a, b number.BigGaussian) number.BigGaussian { return a.Add(b) }
func (BigGaussian) Sub(a, b number.BigGaussian) number.BigGaussian { return a.Sub(b) }
func (BigGaussian) Mul(a, b number.BigGaussian) number.BigGaussian { return a.Mul(b) }
func (BigGaussian) Neg(e number.BigGaussian) number.BigGaussian    { return e.Neg() }
func (BigGaussian) Equal(a, b number.BigGaussian) bool             { return a.Equal(b) }

func (BigGaussian) Div(a, b number.BigGaussian) (number.BigComplex, error) { return a.Div(b) }

// BigComplex is the field of Gaussian rationals. It is its own quotient.
type BigComplex struct{}

var _ Field[number.BigComplex, number.BigComplex] = BigComplex{}

func (BigComplex) Zero() number.BigComplex { return number.BigComplexZero }
func (BigComplex) One() number.BigComplex  { return number.BigComplexOne }

func (BigComplex) Add(a, b number.BigComplex) number.BigComplex { return a.Add(b) }
func (BigComplex) Sub(a, b number.BigComplex) number.BigComplex { return a.Sub(b) }
func (BigComplex) Mul(a, b number.BigComplex) number.BigComplex { return a.Mul(b) }
func (BigComplex) Neg(e number.BigComplex) number.BigComplex    { return e.Neg() }
func (BigComplex) Equal(a, b number.BigComplex) bool            { return a.Equal(b) }

func (BigComplex) Div(a, b number.BigComplex) (number.BigComplex, error) { return a.Div(b) }
