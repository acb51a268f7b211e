package k256

import (
	"math/big"
	"sync"
)

const (
	// genWindowBits is the width of each window of the multiplier.
	genWindowBits = 4
	// genWindowValues is the number of values a window can take.
	genWindowValues = 1 << genWindowBits
	// genWindows is the number of windows covering a 256-bit multiplier.
	genWindows = 256 / genWindowBits
)

// genTable stores precomputed multiples of G for each window:
// genTable[w][v] = v * 2^(4w) * G for v in 1..15. genTable[w][0] is unused
// and left as the point at infinity.
type genTable [genWindows][genWindowValues]Point

var (
	// Global table for generator multiplication (built once)
	globalGenTable *genTable
	genTableOnce   sync.Once
)

// build fills the table. Every window base is the previous one doubled four
// times; the entries of a window are successive sums of its base.
func (t *genTable) build() {
	base := generator
	for w := 0; w < genWindows; w++ {
		t[w][1] = base
		for v := 2; v < genWindowValues; v++ {
			t[w][v] = Add(t[w][v-1], base)
		}
		for i := 0; i < genWindowBits; i++ {
			base = double(base)
		}
	}
}

func getGenTable() *genTable {
	genTableOnce.Do(func() {
		globalGenTable = &genTable{}
		globalGenTable.build()
	})
	return globalGenTable
}

// BaseMultiply returns k*G for any integer k, reducing it modulo N first.
// It looks up one precomputed multiple of G per 4-bit window of k instead of
// doubling, and agrees with ScalarBaseMultiply for every k in (0, N). The
// table is built on first use.
func BaseMultiply(k *big.Int) Point {
	kr := ReduceScalar(k)
	if kr.Sign() == 0 {
		return Point{}
	}

	t := getGenTable()
	var acc Point
	for w := 0; w < genWindows; w++ {
		var v uint
		for i := genWindowBits - 1; i >= 0; i-- {
			v = v<<1 | kr.Bit(w*genWindowBits+i)
		}
		if v != 0 {
			acc = Add(acc, t[w][v])
		}
	}
	return acc
}
