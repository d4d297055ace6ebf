package mp

import "math/big"

// Jacobi evaluates the classical Jacobi polynomials P_k^(alpha,beta)(x) for
// k = 0..n at a single point via the standard three-term recurrence, in
// working precision. The returned slice has n+1 entries; n < 0 yields an
// empty sequence.
func Jacobi(n int, alpha, beta float64, x *big.Float) []*big.Float {
	if n < 0 {
		return nil
	}
	P := make([]*big.Float, n+1)
	P[0] = Int(1)
	if n == 0 {
		return P
	}
	// P_1 = ((alpha - beta) + (alpha + beta + 2) x) / 2
	P[1] = Quo(Add(New(alpha-beta), Mul(New(alpha+beta+2), x)), Int(2))
	for k := 1; k < n; k++ {
		kf := float64(k)
		a1 := New(2 * (kf + 1) * (kf + alpha + beta + 1) * (2*kf + alpha + beta))
		a2 := New((2*kf + alpha + beta + 1) * (alpha*alpha - beta*beta))
		a3 := New((2*kf + alpha + beta) * (2*kf + alpha + beta + 1) * (2*kf + alpha + beta + 2))
		a4 := New(2 * (kf + alpha) * (kf + beta) * (2*kf + alpha + beta + 2))
		P[k+1] = Quo(Sub(Mul(Add(a2, Mul(a3, x)), P[k]), Mul(a4, P[k-1])), a1)
	}
	return P
}

// JacobiDiff evaluates the first derivatives of P_k^(alpha,beta) for
// k = 0..n at a single point, using
// d/dx P_k^(a,b) = (k + a + b + 1)/2 * P_{k-1}^(a+1,b+1).
func JacobiDiff(n int, alpha, beta float64, x *big.Float) []*big.Float {
	if n < 0 {
		return nil
	}
	dP := make([]*big.Float, n+1)
	dP[0] = Int(0)
	if n == 0 {
		return dP
	}
	shift := Jacobi(n-1, alpha+1, beta+1, x)
	for k := 1; k <= n; k++ {
		dP[k] = Mul(New((float64(k)+alpha+beta+1)/2), shift[k-1])
	}
	return dP
}
