package sbox //nolint:testpackage // need access to source tables

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	fuzz "github.com/trailofbits/go-fuzz-utils"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	tables, err := New(ss0, ss1, ss2, ss3)
	if err != nil {
		t.Fatal(err)
	}

	for i, src := range [][]uint32{ss0, ss1, ss2, ss3} {
		if diff := cmp.Diff(src, tables[i][:]); diff != "" {
			t.Errorf("table %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNew_Malformed(t *testing.T) {
	long := append(append([]uint32{}, ss3...), 0)

	tests := []struct {
		name           string
		t0, t1, t2, t3 []uint32
		want           MalformedTableError
	}{
		{"short t0", ss0[:255], ss1, ss2, ss3, MalformedTableError{Table: 0, Len: 255}},
		{"empty t2", ss0, ss1, nil, ss3, MalformedTableError{Table: 2, Len: 0}},
		{"long t3", ss0, ss1, ss2, long, MalformedTableError{Table: 3, Len: 257}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, err := New(tt.t0, tt.t1, tt.t2, tt.t3)
			if tables != nil {
				t.Errorf("New() = %v, want nil", tables)
			}

			var mte *MalformedTableError
			if !errors.As(err, &mte) {
				t.Fatalf("New() err = %v, want MalformedTableError", err)
			}
			if diff := cmp.Diff(tt.want, *mte); diff != "" {
				t.Errorf("MalformedTableError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMalformedTableError_Error(t *testing.T) {
	err := &MalformedTableError{Table: 1, Len: 12}
	if got, want := err.Error(), "sbox: table 1 has 12 entries, want 256"; got != want {
		t.Errorf("Error() = %q, want = %q", got, want)
	}
}

func TestTables_G(t *testing.T) {
	tests := []struct {
		x, want uint32
	}{
		{0x00000000, 0xb829b829},
		{0x00000001, 0x78f96839},
		{0xffffffff, 0xbb96bb96},
		{0x12345678, 0xc8787411},
		{0x80000000, 0x93a21b81},
	}

	for _, tt := range tests {
		if got, want := Standard.G(tt.x), tt.want; got != want {
			t.Errorf("G(%#08x) = %#08x, want = %#08x", tt.x, got, want)
		}
	}
}

func TestTables_G_Bytes(t *testing.T) {
	// Each byte position selects from its own table.
	x := uint32(0x01020304)
	want := Standard[0][0x01] ^ Standard[1][0x02] ^ Standard[2][0x03] ^ Standard[3][0x04]
	if got := Standard.G(x); got != want {
		t.Errorf("G(%#08x) = %#08x, want = %#08x", x, got, want)
	}
}

func TestTables_GWide(t *testing.T) {
	if got, want := Standard.GWide(1<<32), Standard.G(0x80000000); got != want {
		t.Errorf("GWide(1<<32) = %#08x, want = %#08x", got, want)
	}

	if got, want := Standard.GWide(0x1_2345_6789), Standard.G(0x91a2b3c4); got != want {
		t.Errorf("GWide(0x123456789) = %#08x, want = %#08x", got, want)
	}

	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint32().Draw(t, "x")
		if got, want := Standard.GWide(uint64(x)), Standard.G(x); got != want {
			t.Fatalf("GWide(%#08x) = %#08x, want = %#08x", x, got, want)
		}
	})
}

func TestLegacy(t *testing.T) {
	if got, want := Legacy[0][8], uint32(0x0d4d515c); got != want {
		t.Errorf("Legacy[0][8] = %#08x, want = %#08x", got, want)
	}

	if got, want := Legacy.G(0x12345678), uint32(0x08787411); got != want {
		t.Errorf("Legacy.G(0x12345678) = %#08x, want = %#08x", got, want)
	}

	for n := range Standard {
		for i := range Size {
			want := Standard[n][i]
			if i != 0 && i%8 == 0 {
				want &= 0x0fffffff
			}
			if got := Legacy[n][i]; got != want {
				t.Errorf("Legacy[%d][%d] = %#08x, want = %#08x", n, i, got, want)
			}
		}
	}
}

func TestTruncated_DoesNotAlias(t *testing.T) {
	before := ss1[8]
	_ = truncated(ss1)
	if got, want := ss1[8], before; got != want {
		t.Errorf("ss1[8] = %#08x after truncated(), want = %#08x", got, want)
	}
}

func FuzzG(f *testing.F) {
	for _, x := range []uint32{0, 1, 0x80000000, 0xffffffff} {
		var b [4]byte
		b[0], b[1], b[2], b[3] = byte(x>>24), byte(x>>16), byte(x>>8), byte(x)
		f.Add(b[:])
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		x, err := tp.GetUint32()
		if err != nil {
			t.Skip(err)
		}

		want := Standard[0][x>>24] ^ Standard[1][x>>16&0xff] ^ Standard[2][x>>8&0xff] ^ Standard[3][x&0xff]
		if got := Standard.G(x); got != want {
			t.Errorf("G(%#08x) = %#08x, want = %#08x", x, got, want)
		}
	})
}
