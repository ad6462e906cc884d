// Package sbox provides the four SEED substitution tables and the G confusion function built on them.
//
// Tables are compiled in as 32-bit constants and validated once, when the package is initialized. Every lookup is
// indexed by a byte, so G is defined for all 32-bit inputs.
package sbox

import (
	"fmt"
	"math/bits"
)

// Size is the number of entries in each substitution table.
const Size = 256

// A Table maps a byte to a 32-bit word.
type Table [Size]uint32

// Tables holds T0 through T3 in the order G consults them.
type Tables [4]Table

// MalformedTableError is returned by New when a source table does not have exactly Size entries.
type MalformedTableError struct {
	Table int // index of the offending table, 0 through 3
	Len   int // number of entries it actually has
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("sbox: table %d has %d entries, want %d", e.Table, e.Len, Size)
}

// New validates and copies the four source tables.
func New(t0, t1, t2, t3 []uint32) (*Tables, error) {
	var t Tables
	for i, src := range [4][]uint32{t0, t1, t2, t3} {
		if len(src) != Size {
			return nil, &MalformedTableError{Table: i, Len: len(src)}
		}
		copy(t[i][:], src)
	}
	return &t, nil
}

//nolint:gochecknoglobals // built once from compiled-in constants
var (
	// Standard is the SEED table set.
	Standard = mustNew(ss0, ss1, ss2, ss3)

	// Legacy is the table set historical outputs were computed with: the entry at every index that is a non-zero
	// multiple of eight lost its most significant hex digit.
	Legacy = mustNew(truncated(ss0), truncated(ss1), truncated(ss2), truncated(ss3))
)

// G splits x into bytes b0 (most significant) through b3 and XORs T0[b0], T1[b1], T2[b2] and T3[b3].
func (t *Tables) G(x uint32) uint32 {
	return t[0][byte(x>>24)] ^ t[1][byte(x>>16)] ^ t[2][byte(x>>8)] ^ t[3][byte(x)]
}

// GWide applies G to the leading 32 bits of x's minimal binary representation. Values that fit in 32 bits are passed
// through unchanged. This is how legacy outputs treated over-wide key schedule intermediates.
func (t *Tables) GWide(x uint64) uint32 {
	if n := bits.Len64(x); n > 32 {
		x >>= n - 32
	}
	return t.G(uint32(x))
}

func truncated(src []uint32) []uint32 {
	dst := make([]uint32, len(src))
	copy(dst, src)
	for i := 8; i < len(dst); i += 8 {
		dst[i] &= 0x0fffffff
	}
	return dst
}

func mustNew(t0, t1, t2, t3 []uint32) *Tables {
	t, err := New(t0, t1, t2, t3)
	if err != nil {
		panic(err)
	}
	return t
}
