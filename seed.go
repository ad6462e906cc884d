// Package seed implements decryption of single 128-bit blocks with a [SEED]-structured Feistel network.
//
// The cipher uses SEED's substitution tables, G function, round constants, and round function F, but runs two rounds
// (round indices 1 then 0) instead of sixteen. Its key schedule is stateless: each round's key pair is derived from
// the original key rather than from a rotated copy carried over from the previous round.
//
// All arithmetic is done on fixed-width unsigned integers and masked to 32 or 64 bits. DecryptLegacy reproduces
// outputs that were computed without that masking, and with slightly damaged substitution tables, for compatibility
// with existing values.
//
// [SEED]: https://www.rfc-editor.org/rfc/rfc4269
package seed

import (
	"encoding/binary"

	"github.com/codahale/seed/internal/round"
	"github.com/codahale/seed/internal/sbox"
	"github.com/codahale/seed/internal/schedule"
)

const (
	// BlockSize is the size of a block, in bytes.
	BlockSize = 16

	// KeySize is the size of a key, in bytes.
	KeySize = 16

	// DefaultRounds is the number of rounds Decrypt runs.
	DefaultRounds = 2

	// MaxRounds is the largest round count DecryptRounds accepts.
	MaxRounds = schedule.Rounds
)

// A Block is a 128-bit big-endian value. Its first eight bytes are the left half.
type Block [BlockSize]byte

// A Key is a 128-bit big-endian value. Its four 32-bit words are key0 through key3.
type Key [KeySize]byte

// Decrypt runs the two-round Feistel network over ciphertext using key.
func Decrypt(ciphertext Block, key Key) Block {
	return standard.decrypt(ciphertext, key, DefaultRounds)
}

// DecryptRounds is Decrypt with a configurable number of rounds, from 1 to MaxRounds. Round indices run from
// rounds-1 down to 0 and the final round does not swap halves, so DecryptRounds(c, k, DefaultRounds) is
// Decrypt(c, k). Other round counts are not compatible with any existing outputs.
func DecryptRounds(ciphertext Block, key Key, rounds int) (Block, error) {
	if rounds < 1 || rounds > MaxRounds {
		return Block{}, ErrInvalidRounds
	}
	return standard.decrypt(ciphertext, key, rounds), nil
}

// DecryptLegacy is Decrypt as historical outputs computed it, without masking intermediate values and using tables
// in which every entry at a non-zero index divisible by eight lost its most significant hex digit.
func DecryptLegacy(ciphertext Block, key Key) Block {
	return legacy.decrypt(ciphertext, key, DefaultRounds)
}

// DecryptRoundsLegacy is DecryptRounds with the legacy behavior of DecryptLegacy.
func DecryptRoundsLegacy(ciphertext Block, key Key, rounds int) (Block, error) {
	if rounds < 1 || rounds > MaxRounds {
		return Block{}, ErrInvalidRounds
	}
	return legacy.decrypt(ciphertext, key, rounds), nil
}

type variant struct {
	tables *sbox.Tables
	derive func(*sbox.Tables, schedule.Words, int) (schedule.Pair, schedule.Words)
	f      func(*sbox.Tables, schedule.Pair, uint64) uint64
}

//nolint:gochecknoglobals // immutable
var (
	standard = &variant{tables: sbox.Standard, derive: schedule.Derive, f: round.F}
	legacy   = &variant{tables: sbox.Legacy, derive: schedule.DeriveLegacy, f: round.FLegacy}
)

func (v *variant) decrypt(ciphertext Block, key Key, rounds int) Block {
	var order [MaxRounds]int
	for i := range rounds {
		order[i] = rounds - 1 - i
	}
	return v.feistel(ciphertext, key, order[:rounds])
}

// feistel applies one round per entry of order, swapping halves after every round but the last.
func (v *variant) feistel(ciphertext Block, key Key, order []int) Block {
	l := binary.BigEndian.Uint64(ciphertext[:8])
	r := binary.BigEndian.Uint64(ciphertext[8:])
	words := key.words()

	for i, idx := range order {
		pair, _ := v.derive(v.tables, words, idx)
		if i == len(order)-1 {
			l ^= v.f(v.tables, pair, r)
		} else {
			l, r = r, l^v.f(v.tables, pair, r)
		}
	}

	var out Block
	binary.BigEndian.PutUint64(out[:8], l)
	binary.BigEndian.PutUint64(out[8:], r)
	return out
}

func (k Key) words() schedule.Words {
	return schedule.Words{
		binary.BigEndian.Uint32(k[0:]),
		binary.BigEndian.Uint32(k[4:]),
		binary.BigEndian.Uint32(k[8:]),
		binary.BigEndian.Uint32(k[12:]),
	}
}
