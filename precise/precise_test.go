package precise

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEther(t *testing.T) {
	assert.Equal(t, "0", Ether(0).String())
	assert.Equal(t, "1000000000000000000", Ether(1).String())
	assert.Equal(t, "2500000000000000000000", Ether(2500).String())
	assert.Equal(t, "-1000000000000000000", Ether(-1).String())
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "5000000", Units(5, 6).String())
	assert.Equal(t, "100000000", Units(1, 8).String())
	assert.Equal(t, Ether(3).String(), Units(3, 18).String())
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want *big.Int
	}{
		{Ether(2), Ether(3), Ether(6)},
		{Ether(1), big.NewInt(1), big.NewInt(1)},
		{big.NewInt(3), big.NewInt(5), big.NewInt(0)}, // floors to zero
		{Ether(0), Ether(100), Ether(0)},
		{Units(100, 6), Ether(1), Units(100, 6)},
	}
	for _, c := range cases {
		got := Mul(c.a, c.b)
		assert.Equal(t, c.want.String(), got.String())
	}
}

func TestMulCeil(t *testing.T) {
	// An inexact product rounds up where Mul rounds down.
	a, b := big.NewInt(3), big.NewInt(5)
	assert.Equal(t, "0", Mul(a, b).String())
	assert.Equal(t, "1", MulCeil(a, b).String())

	// Exact products agree.
	assert.Equal(t, Ether(6).String(), MulCeil(Ether(2), Ether(3)).String())

	// Zero maps to zero rather than rounding up.
	assert.Equal(t, "0", MulCeil(new(big.Int), Ether(9)).String())
	assert.Equal(t, "0", MulCeil(Ether(9), new(big.Int)).String())
}

func TestDiv(t *testing.T) {
	assert.Equal(t, Ether(2).String(), Div(Ether(6), Ether(3)).String())
	assert.Equal(t, "500000000000000000", Div(Ether(1), Ether(2)).String())
	// 1/3 floors.
	third := Div(Ether(1), Ether(3))
	assert.Equal(t, "333333333333333333", third.String())
}

func TestDivCeil(t *testing.T) {
	// Inexact quotient rounds up.
	assert.Equal(t, "333333333333333334", DivCeil(Ether(1), Ether(3)).String())
	// Exact quotient agrees with Div.
	assert.Equal(t, Ether(2).String(), DivCeil(Ether(6), Ether(3)).String())
	// Zero numerator stays zero.
	assert.Equal(t, "0", DivCeil(new(big.Int), Ether(3)).String())

	require.Panics(t, func() { DivCeil(Ether(1), new(big.Int)) })
}

func TestDivPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { Div(Ether(1), new(big.Int)) })
	require.Panics(t, func() { DivInt(Ether(1), new(big.Int)) })
	require.Panics(t, func() { DivFloorInt(Ether(1), new(big.Int)) })
}

func TestMulInt(t *testing.T) {
	assert.Equal(t, Ether(-6).String(), MulInt(Ether(-2), Ether(3)).String())
	assert.Equal(t, Ether(6).String(), MulInt(Ether(-2), Ether(-3)).String())
	// Truncation toward zero: -3 * 5 / 1e18 is a small negative fraction.
	assert.Equal(t, "0", MulInt(big.NewInt(-3), big.NewInt(5)).String())
}

func TestDivInt(t *testing.T) {
	assert.Equal(t, Ether(-2).String(), DivInt(Ether(6), Ether(-3)).String())
	// Truncates toward zero.
	assert.Equal(t, "-333333333333333333", DivInt(Ether(-1), Ether(3)).String())
}

func TestDivFloorInt(t *testing.T) {
	// Positive results match DivInt.
	assert.Equal(t, DivInt(Ether(6), Ether(3)).String(), DivFloorInt(Ether(6), Ether(3)).String())
	// Negative inexact results round toward negative infinity.
	assert.Equal(t, "-333333333333333334", DivFloorInt(Ether(-1), Ether(3)).String())
	assert.Equal(t, "-333333333333333334", DivFloorInt(Ether(1), Ether(-3)).String())
	// Negative exact results are not adjusted.
	assert.Equal(t, Ether(-2).String(), DivFloorInt(Ether(6), Ether(-3)).String())
}

func TestArgumentsNotMutated(t *testing.T) {
	a, b := Ether(7), Ether(3)
	Mul(a, b)
	MulCeil(a, b)
	Div(a, b)
	DivCeil(a, b)
	DivFloorInt(a, b)
	assert.Equal(t, Ether(7).String(), a.String())
	assert.Equal(t, Ether(3).String(), b.String())
}
