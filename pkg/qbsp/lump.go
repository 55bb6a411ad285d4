package qbsp

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// decodeLump reads the lump l of data as a dense little-endian array of T.
// T must have a fixed encoded size.
func decodeLump[T any](data []byte, l Lump) ([]T, error) {
	var def T

	width := binary.Size(def)
	if width <= 0 {
		return nil, errors.Errorf("lump %s: record type %T has no fixed size", l.Name(), def)
	}

	window, err := l.window(data)
	if err != nil {
		return nil, err
	}

	if len(window)%width != 0 {
		return nil, errors.Wrapf(ErrMalformedLump, "lump %s: size %d is not a multiple of %d",
			l.Name(), len(window), width)
	}

	out := make([]T, len(window)/width)
	if len(out) == 0 {
		return out, nil
	}

	if err := binary.Read(bytes.NewReader(window), binary.LittleEndian, out); err != nil {
		return nil, errors.Wrapf(err, "lump %s", l.Name())
	}

	return out, nil
}
