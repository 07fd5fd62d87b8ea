// Package ethutil holds small address and calldata helpers shared by the
// deployer, the fixtures and the test suites.
package ethutil

import (
	"crypto/rand"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// ContainsAddress reports whether addr appears in addrs.
func ContainsAddress(addrs []common.Address, addr common.Address) bool {
	return lo.Contains(addrs, addr)
}

// IndexOfAddress returns the position of addr in addrs, or -1.
func IndexOfAddress(addrs []common.Address, addr common.Address) int {
	return lo.IndexOf(addrs, addr)
}

// DedupAddresses returns addrs with duplicates removed, preserving first-seen
// order.
func DedupAddresses(addrs []common.Address) []common.Address {
	return lo.Uniq(addrs)
}

// HasDuplicates reports whether addrs contains the same address twice.
func HasDuplicates(addrs []common.Address) bool {
	return len(lo.Uniq(addrs)) != len(addrs)
}

// RandomAddress returns a fresh random address. Useful in tests for values
// that only need to be distinct.
func RandomAddress() common.Address {
	var a common.Address
	if _, err := rand.Read(a[:]); err != nil {
		panic(err)
	}
	return a
}

// SortTokens orders a token pair the way UniswapV2 does, by ascending
// address.
func SortTokens(a, b common.Address) (common.Address, common.Address) {
	if new(big.Int).SetBytes(a.Bytes()).Cmp(new(big.Int).SetBytes(b.Bytes())) < 0 {
		return a, b
	}
	return b, a
}
