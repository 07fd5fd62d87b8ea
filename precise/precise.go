// Package precise implements the 18-decimal fixed-point conventions used by
// the deployed PreciseUnitMath library, so tests can recompute expected
// on-chain values independently.
//
// All functions treat their arguments as immutable and return fresh *big.Int
// values. Division by zero panics, mirroring the on-chain revert.
package precise

import "math/big"

// Unit is the fixed-point scaling factor: 10^18.
var Unit = big.NewInt(1e18)

// MaxUint256 is 2^256 - 1, the largest value an EVM uint256 can hold.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// Ether returns n * 10^18.
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), Unit)
}

// Units returns n * 10^decimals, for tokens with non-18-decimal precision.
func Units(n int64, decimals uint) *big.Int {
	exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return exp.Mul(exp, big.NewInt(n))
}

// Mul returns a * b / 10^18, rounding toward zero.
// Both arguments are interpreted as unsigned fixed-point values.
func Mul(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Quo(product, Unit)
}

// MulCeil returns a * b / 10^18, rounding away from zero.
// The zero product maps to zero, matching preciseMulCeil on chain.
func MulCeil(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(a, b)
	product.Sub(product, big.NewInt(1))
	product.Quo(product, Unit)
	return product.Add(product, big.NewInt(1))
}

// Div returns a * 10^18 / b, rounding toward zero.
func Div(a, b *big.Int) *big.Int {
	scaled := new(big.Int).Mul(a, Unit)
	return scaled.Quo(scaled, b)
}

// DivCeil returns a * 10^18 / b, rounding away from zero.
func DivCeil(a, b *big.Int) *big.Int {
	if b.Sign() == 0 {
		panic("precise: division by zero")
	}
	if a.Sign() == 0 {
		return new(big.Int)
	}
	scaled := new(big.Int).Mul(a, Unit)
	scaled.Sub(scaled, big.NewInt(1))
	scaled.Quo(scaled, b)
	return scaled.Add(scaled, big.NewInt(1))
}

// MulInt returns a * b / 10^18 for signed values, truncating toward zero.
func MulInt(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Quo(product, Unit)
}

// DivInt returns a * 10^18 / b for signed values, truncating toward zero.
func DivInt(a, b *big.Int) *big.Int {
	scaled := new(big.Int).Mul(a, Unit)
	return scaled.Quo(scaled, b)
}

// DivFloorInt returns a * 10^18 / b for signed values, rounding toward
// negative infinity. This matches the position-unit rounding in the deployed
// modules, which always round units against the Set.
func DivFloorInt(a, b *big.Int) *big.Int {
	scaled := new(big.Int).Mul(a, Unit)
	quo, rem := new(big.Int).QuoRem(scaled, b, new(big.Int))
	if rem.Sign() != 0 && (scaled.Sign() < 0) != (b.Sign() < 0) {
		quo.Sub(quo, big.NewInt(1))
	}
	return quo
}
