// Package round implements the SEED round function F over 64-bit half-blocks.
package round

import (
	"math/bits"

	"github.com/codahale/seed/internal/sbox"
	"github.com/codahale/seed/internal/schedule"
)

// F combines the round key pair k with the half-block r, returning a new half-block.
func F(t *sbox.Tables, k schedule.Pair, r uint64) uint64 {
	return Join(f(t, k, r))
}

// FLegacy is F with the output halves concatenated at their natural bit lengths instead of 32 bits each. The result
// matches F only when the low output word has its top bit set or the high output word is zero.
func FLegacy(t *sbox.Tables, k schedule.Pair, r uint64) uint64 {
	return concat(f(t, k, r))
}

func f(t *sbox.Tables, k schedule.Pair, r uint64) (hi, lo uint32) {
	r0, r1 := Split(r)
	a := r0 ^ k.K0
	b := r1 ^ k.K1

	common := t.G(a ^ b)
	g01 := t.G(common+a) + common
	g02 := common + a
	g111 := t.G(a^b) + a
	g11 := t.G(g111 + common)

	return g01 + g02, g11
}

// Join packs two words into a half-block, hi in bits 63..32 and lo in bits 31..0.
func Join(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// Split is the inverse of Join.
func Split(r uint64) (hi, lo uint32) {
	return uint32(r >> 32), uint32(r)
}

// concat appends lo's minimal binary representation to hi's. Zero occupies one bit.
func concat(hi, lo uint32) uint64 {
	n := max(bits.Len32(lo), 1)
	return uint64(hi)<<n | uint64(lo)
}
