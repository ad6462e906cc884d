package seed

import (
	"errors"

	"github.com/codahale/seed/internal/fixedwidth"
)

var (
	// ErrOutOfRange is returned when a ciphertext or key is negative or wider than 128 bits.
	ErrOutOfRange = fixedwidth.ErrOutOfRange

	// ErrSyntax is returned when a ciphertext or key is not a base-10 integer.
	ErrSyntax = errors.New("seed: invalid decimal integer")

	// ErrInvalidRounds is returned when a round count is not between 1 and MaxRounds.
	ErrInvalidRounds = errors.New("seed: invalid round count")
)
