package seed

import (
	"fmt"
	"math/big"

	"github.com/codahale/seed/internal/fixedwidth"
)

// ParseBlock parses a base-10 unsigned integer of at most 128 bits.
func ParseBlock(s string) (Block, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return Block{}, err
	}
	return BlockFromInt(v)
}

// ParseKey parses a base-10 unsigned integer of at most 128 bits. Narrower values are zero-extended.
func ParseKey(s string) (Key, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return Key{}, err
	}
	return KeyFromInt(v)
}

// BlockFromInt returns v as a block, or ErrOutOfRange if v is negative or wider than 128 bits.
func BlockFromInt(v *big.Int) (Block, error) {
	var b Block
	if err := fill(b[:], v); err != nil {
		return Block{}, err
	}
	return b, nil
}

// KeyFromInt returns v as a key, or ErrOutOfRange if v is negative or wider than 128 bits.
func KeyFromInt(v *big.Int) (Key, error) {
	var k Key
	if err := fill(k[:], v); err != nil {
		return Key{}, err
	}
	return k, nil
}

// Int returns the block as an unsigned integer.
func (b Block) Int() *big.Int {
	return fixedwidth.Decode(b[:])
}

// String returns the block in base 10.
func (b Block) String() string {
	return b.Int().String()
}

// Int returns the key as an unsigned integer.
func (k Key) Int() *big.Int {
	return fixedwidth.Decode(k[:])
}

// String returns the key in base 10.
func (k Key) String() string {
	return k.Int().String()
}

func parseDecimal(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return v, nil
}

func fill(dst []byte, v *big.Int) error {
	b, err := fixedwidth.Encode(v, len(dst)*8)
	if err != nil {
		return fmt.Errorf("%w: %s", err, v)
	}
	copy(dst, b)
	return nil
}
