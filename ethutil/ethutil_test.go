package ethutil

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestContainsAndIndexOf(t *testing.T) {
	a := common.HexToAddress("0x01")
	b := common.HexToAddress("0x02")
	c := common.HexToAddress("0x03")
	list := []common.Address{a, b}

	assert.True(t, ContainsAddress(list, a))
	assert.False(t, ContainsAddress(list, c))
	assert.Equal(t, 1, IndexOfAddress(list, b))
	assert.Equal(t, -1, IndexOfAddress(list, c))
}

func TestDedupAddresses(t *testing.T) {
	a := common.HexToAddress("0x01")
	b := common.HexToAddress("0x02")

	assert.Equal(t, []common.Address{a, b}, DedupAddresses([]common.Address{a, b, a, b, a}))
	assert.False(t, HasDuplicates([]common.Address{a, b}))
	assert.True(t, HasDuplicates([]common.Address{a, b, a}))
}

func TestRandomAddress(t *testing.T) {
	seen := map[common.Address]bool{}
	for i := 0; i < 32; i++ {
		addr := RandomAddress()
		assert.False(t, seen[addr], "random addresses should not repeat")
		seen[addr] = true
	}
}

func TestSortTokens(t *testing.T) {
	lo := common.HexToAddress("0x01")
	hi := common.HexToAddress("0xff")

	a, b := SortTokens(hi, lo)
	assert.Equal(t, lo, a)
	assert.Equal(t, hi, b)

	a, b = SortTokens(lo, hi)
	assert.Equal(t, lo, a)
	assert.Equal(t, hi, b)
}
