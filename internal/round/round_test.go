package round //nolint:testpackage // need access to concat

import (
	"math/bits"
	"testing"

	"github.com/codahale/seed/internal/sbox"
	"github.com/codahale/seed/internal/schedule"
	fuzz "github.com/trailofbits/go-fuzz-utils"
	"pgregory.net/rapid"
)

func TestF(t *testing.T) {
	tests := []struct {
		name string
		k    schedule.Pair
		r    uint64
		want uint64
	}{
		{"zero", schedule.Pair{}, 0, 0x7d9a7d99aaf8a9fc},
		{"constants", schedule.Pair{K0: 0x9e3779b9, K1: 0x3c6ef373}, 0x0123456789abcdef, 0x8da2e6ac11e2c33f},
		{"ones", schedule.Pair{K0: 1, K1: 2}, 0xffffffffffffffff, 0x4e9f7b5569fca13b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := F(sbox.Standard, tt.k, tt.r), tt.want; got != want {
				t.Errorf("F(%v, %#016x) = %#016x, want = %#016x", tt.k, tt.r, got, want)
			}
		})
	}
}

func TestF_ShortLowHalf(t *testing.T) {
	// The low output word here has only 29 significant bits; it must still occupy bits 31..0.
	k := schedule.Pair{K0: 0x9e3779b9, K1: 0x3c6ef373}
	hi, lo := Split(F(sbox.Standard, k, 0x0123456789abcdef))

	if got, want := hi, uint32(0x8da2e6ac); got != want {
		t.Errorf("hi = %#08x, want = %#08x", got, want)
	}
	if got, want := lo, uint32(0x11e2c33f); got != want {
		t.Errorf("lo = %#08x, want = %#08x", got, want)
	}
	if n := bits.Len32(lo); n >= 32 {
		t.Fatalf("lo has %d significant bits, vector no longer exercises short halves", n)
	}

	if got, want := FLegacy(sbox.Standard, k, 0x0123456789abcdef), uint64(0x11b45cd591e2c33f); got != want {
		t.Errorf("FLegacy() = %#016x, want = %#016x", got, want)
	}
}

func TestFLegacy(t *testing.T) {
	if got, want := FLegacy(sbox.Legacy, schedule.Pair{}, 0), uint64(0x1f669f666af8a9fc); got != want {
		t.Errorf("FLegacy(legacy, 0, 0) = %#016x, want = %#016x", got, want)
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		hi, lo uint32
		want   uint64
	}{
		{0x8da2e6ac, 0x11e2c33f, 0x11b45cd591e2c33f},
		{0xffffffff, 0xffffffff, 0xffffffffffffffff},
		{5, 0, 10},
		{0, 7, 7},
		{1, 1, 3},
	}

	for _, tt := range tests {
		if got, want := concat(tt.hi, tt.lo), tt.want; got != want {
			t.Errorf("concat(%#x, %#x) = %#x, want = %#x", tt.hi, tt.lo, got, want)
		}
	}
}

func TestJoinSplit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hi := rapid.Uint32().Draw(t, "hi")
		lo := rapid.Uint32().Draw(t, "lo")

		gotHi, gotLo := Split(Join(hi, lo))
		if gotHi != hi || gotLo != lo {
			t.Fatalf("Split(Join(%#x, %#x)) = (%#x, %#x)", hi, lo, gotHi, gotLo)
		}
	})
}

func FuzzF(f *testing.F) {
	f.Add([]byte{0x9e, 0x37, 0x79, 0xb9, 0x3c, 0x6e, 0xf3, 0x73, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef})
	f.Add(make([]byte, 16))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		k0, err := tp.GetUint32()
		if err != nil {
			t.Skip(err)
		}
		k1, err := tp.GetUint32()
		if err != nil {
			t.Skip(err)
		}
		r, err := tp.GetUint64()
		if err != nil {
			t.Skip(err)
		}

		k := schedule.Pair{K0: k0, K1: k1}
		out := F(sbox.Standard, k, r)
		if got, want := out, F(sbox.Standard, k, r); got != want {
			t.Errorf("F(%v, %#x) is not deterministic: %#x != %#x", k, r, got, want)
		}

		// Legacy concatenation agrees exactly when the low word is full width or the high word is zero.
		hi, lo := Split(out)
		if lo>>31 == 1 || hi == 0 {
			if got, want := FLegacy(sbox.Standard, k, r), out; got != want {
				t.Errorf("FLegacy(%v, %#x) = %#x, want = %#x", k, r, got, want)
			}
		}
	})
}
