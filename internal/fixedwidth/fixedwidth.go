// Package fixedwidth encodes non-negative integers as big-endian byte strings of exactly 32, 64, or 128 bits.
package fixedwidth

import (
	"errors"
	"math/big"
)

var (
	// ErrOutOfRange is returned when a value is negative or does not fit in the requested width.
	ErrOutOfRange = errors.New("seed: value out of range")

	// ErrInvalidWidth is returned when the requested width is not 32, 64, or 128 bits.
	ErrInvalidWidth = errors.New("seed: invalid width")
)

// Encode returns v as exactly width/8 big-endian bytes, zero-extended on the most-significant side.
func Encode(v *big.Int, width int) ([]byte, error) {
	switch width {
	case 32, 64, 128:
	default:
		return nil, ErrInvalidWidth
	}

	if v.Sign() < 0 || v.BitLen() > width {
		return nil, ErrOutOfRange
	}

	return v.FillBytes(make([]byte, width/8)), nil
}

// Decode interprets b as a big-endian unsigned integer.
func Decode(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
