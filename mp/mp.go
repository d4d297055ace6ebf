// Package mp provides the extended precision scalar arithmetic used by the
// orthonormal basis generators. All values are *big.Float carrying the
// process-wide working precision; the helpers here are non-mutating so that
// basis formulas can be written as plain expressions.
package mp

import (
	"math"
	"math/big"
)

const defaultDPS = 50

// prec is the working precision in bits. It is process-wide configuration
// and must be established before any basis evaluation begins.
var prec = bitsForDigits(defaultDPS)

func bitsForDigits(digits int) uint {
	// log2(10) bits per decimal digit, padded to absorb rounding in the
	// conversion itself
	return uint(math.Ceil(float64(digits)*math.Log2(10))) + 8
}

// SetDPS sets the working precision in decimal digits.
func SetDPS(digits int) {
	if digits < 1 {
		panic("mp.SetDPS: digits must be positive")
	}
	prec = bitsForDigits(digits)
}

// Prec returns the working precision in bits.
func Prec() uint {
	return prec
}

// New returns x as a working precision scalar.
func New(x float64) *big.Float {
	return big.NewFloat(x).SetPrec(prec)
}

// Int returns n as a working precision scalar.
func Int(n int) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt64(int64(n))
}

// Float64 rounds x down to working (double) precision.
func Float64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

func Add(xs ...*big.Float) (r *big.Float) {
	r = new(big.Float).SetPrec(prec)
	for _, x := range xs {
		r.Add(r, x)
	}
	return
}

func Sub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(prec).Sub(a, b)
}

func Mul(xs ...*big.Float) (r *big.Float) {
	r = new(big.Float).SetPrec(prec).SetInt64(1)
	for _, x := range xs {
		r.Mul(r, x)
	}
	return
}

func Quo(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(prec).Quo(a, b)
}

func Neg(a *big.Float) *big.Float {
	return new(big.Float).SetPrec(prec).Neg(a)
}

func Sqrt(a *big.Float) *big.Float {
	return new(big.Float).SetPrec(prec).Sqrt(a)
}

// PowInt raises x to an integer power by binary exponentiation. A negative
// exponent inverts the result; x^0 is 1, including at x = 0, which is the
// convention the collapsed coordinate weights rely on.
func PowInt(x *big.Float, n int) *big.Float {
	var (
		r    = new(big.Float).SetPrec(prec).SetInt64(1)
		base = new(big.Float).SetPrec(prec).Set(x)
		p    = n
	)
	if p < 0 {
		p = -p
	}
	for p > 0 {
		if p&1 == 1 {
			r.Mul(r, base)
		}
		base.Mul(base, base)
		p >>= 1
	}
	if n < 0 {
		r.Quo(new(big.Float).SetPrec(prec).SetInt64(1), r)
	}
	return r
}
