package qbsp

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a read would fall outside the buffer,
	// a lump window or a decoded sequence.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrMalformedLump is returned when a lump size is not a whole multiple of its record width.
	ErrMalformedLump = errors.New("malformed lump")

	// ErrMalformedEntityBlock is returned for nested or unterminated entity blocks.
	ErrMalformedEntityBlock = errors.New("malformed entity block")
)
